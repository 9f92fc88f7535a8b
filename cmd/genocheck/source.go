package main

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genocheck"
	"github.com/carbocation/genocheck/table"
)

// source names where a table comes from: a file path or a BigQuery query.
type source struct {
	Path  string
	Query string
}

func (s source) validate() error {
	switch {
	case s.Path == "" && s.Query == "":
		return errors.New("one of --table or --query is required")
	case s.Path != "" && s.Query != "":
		return errors.New("--table and --query are mutually exclusive")
	}
	return nil
}

func loadTable(ctx context.Context, src source, project string) (*table.Table, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	if src.Query != "" {
		if project == "" {
			return nil, errors.New("--bq-project (or GOOGLE_CLOUD_PROJECT) is required with --query")
		}
		logger.Debugw("Querying BigQuery", "project", project)

		wbq, err := table.NewBigQuery(ctx, project)
		if err != nil {
			return nil, err
		}
		defer wbq.Close()

		return table.FromBigQuery(wbq, src.Query)
	}

	var client *storage.Client
	if genocheck.IsGoogleStoragePath(src.Path) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		defer client.Close()
	}

	logger.Debugw("Opening table", "path", src.Path)
	return table.Open(ctx, src.Path, client)
}
