package db

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/model"
	"github.com/pkg/errors"
)

type Archive struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewArchive(client dynamodbiface.DynamoDBAPI) *Archive {
	return &Archive{client: client, table: constants.ArchiveTable}
}

// Connect opens a session against the configured endpoint.
func Connect() (*Archive, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewArchive(dynamodb.New(sess)), nil
}

func toItem(c model.Conversion) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(c.Id)},
		"Source":    {S: aws.String(c.Source)},
		"Text":      {S: aws.String(c.Text)},
		"CreatedAt": {S: aws.String(c.CreatedAt.UTC().Format(time.RFC3339))},
	}
}

func fromItem(item map[string]*dynamodb.AttributeValue) (model.Conversion, error) {
	var c model.Conversion
	str := func(key string) string {
		if v, ok := item[key]; ok && v.S != nil {
			return *v.S
		}
		return ""
	}
	c.Id = str("PK")
	c.Source = str("Source")
	c.Text = str("Text")
	if created := str("CreatedAt"); created != "" {
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return c, errors.Wrapf(err, "bad CreatedAt on %v", c.Id)
		}
		c.CreatedAt = t
	}
	return c, nil
}

func (a *Archive) Put(c model.Conversion) error {
	_, err := a.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      toItem(c),
	})
	if err != nil {
		return errors.Wrap(err, "error from DynamoDB")
	}
	return nil
}

func (a *Archive) Get(id string) (model.Conversion, bool, error) {
	out, err := a.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(a.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return model.Conversion{}, false, errors.Wrap(err, "error from DynamoDB")
	}
	if len(out.Item) == 0 {
		return model.Conversion{}, false, nil
	}
	c, err := fromItem(out.Item)
	return c, err == nil, err
}
