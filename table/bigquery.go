package table

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/carbocation/genocheck/series"
	"github.com/carbocation/pfx"
	"google.golang.org/api/iterator"
)

type WrappedBigQuery struct {
	Context context.Context
	Client  *bigquery.Client
	Project string
}

// NewBigQuery connects to BigQuery, billing queries to project.
func NewBigQuery(ctx context.Context, project string) (*WrappedBigQuery, error) {
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("connecting to BigQuery: %v", err)
	}

	return &WrappedBigQuery{
		Context: ctx,
		Client:  client,
		Project: project,
	}, nil
}

func (wbq *WrappedBigQuery) Close() error {
	return wbq.Client.Close()
}

// FromBigQuery runs query and loads every row. Column names come from the
// result schema; NULL cells become empty strings, which read back as nulls.
func FromBigQuery(wbq *WrappedBigQuery, query string) (*Table, error) {
	it, err := wbq.Client.Query(query).Read(wbq.Context)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rows := make([][]string, 0)
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = bigQueryCell(v)
		}
		rows = append(rows, cells)
	}

	header := make([]string, 0, len(it.Schema))
	for _, field := range it.Schema {
		header = append(header, field.Name)
	}

	return New("bigquery", header, rows)
}

func bigQueryCell(v bigquery.Value) string {
	if v == nil {
		return ""
	}
	return series.FormatValue(v)
}
