package dictionary

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQuerySource reads words from a BigQuery table with `word_key` and `scope` columns.
type BigQuerySource struct {
	Project  string
	Table    string
	Location string
}

// Load returns every word of the given scope that is wordLength letters long.
func (s BigQuerySource) Load(ctx context.Context, scope string, wordLength int) ([]string, error) {
	client, err := bigquery.NewClient(ctx, s.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word_key FROM `%s` WHERE scope = @scope AND LENGTH(word_key) = @length", s.Table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "scope", Value: scope},
		{Name: "length", Value: wordLength},
	}
	q.Location = s.Location

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}
	return readWords(it)
}

type rowIterator interface {
	Next(dst interface{}) error
}

func readWords(it rowIterator) ([]string, error) {
	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		if len(row) == 0 {
			return nil, fmt.Errorf("empty row")
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
