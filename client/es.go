package client

import (
	"context"
	"encoding/json"

	"cyrusbot/model"

	"github.com/olivere/elastic/v7"
)

type EsClient struct {
	*elastic.Client
	name string
}

func newEsClient(url string) (ArchiveClient, error) {
	es, err := elastic.NewClient(elastic.SetURL(url), elastic.SetSniff(false))
	if err != nil {
		return nil, err
	}
	return &EsClient{Client: es}, nil
}

func (e *EsClient) set() {
	e.name = model.ViolationIndexName
}

func (e *EsClient) AddViolation(v *model.Violation) error {
	e.set()
	_, err := e.Index().Index(e.name).BodyJson(v).Do(context.Background())
	if err != nil {
		return err
	}
	return nil
}

func (e *EsClient) SearchViolations(userID int64) ([]*model.Violation, error) {
	e.set()
	var violations []*model.Violation
	defer func() {
		for _, i := range violations {
			model.ViolationPool.Put(i)
		}
	}()
	boolQuery := elastic.NewBoolQuery().Must(elastic.NewTermQuery("user_id", userID))
	res, err := e.Search(e.name).Query(boolQuery).Size(searchLimit).Do(context.Background())
	if err != nil {
		return violations, err
	}
	for _, item := range res.Hits.Hits {
		v := model.ViolationPool.Get().(*model.Violation)
		_ = json.Unmarshal(item.Source, v)
		violations = append(violations, v)
	}
	return violations, nil
}
