package repository

import (
	"context"
	"encoding/json"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "requests"
	requestsSubmitterIDIndex = "submitter_id-index"
)

type requestItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Department  string `dynamodbav:"department,omitempty"`
	Technology  string `dynamodbav:"technology,omitempty"`
	SubmitterID string `dynamodbav:"submitter_id"`
	CreatedAt   string `dynamodbav:"created_at"`
	// Details holds the kind-specific group serialized as JSON; only the
	// variant matching Kind is ever present.
	Details string `dynamodbav:"details,omitempty"`
}

// RequestDynamoRepository persists service requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: submitter_id-index (PK: submitter_id)

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.Request) (entities.Request, error) {
	it, err := toRequestItem(req)
	if err != nil {
		return entities.Request{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Request{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Request{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it)
}

func (r *RequestDynamoRepository) GetAll(ctx context.Context) ([]entities.Request, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	requests := make([]entities.Request, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			req, err := fromRequestItem(it)
			if err != nil {
				return nil, err
			}
			requests = append(requests, req)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return requests, nil
}

func (r *RequestDynamoRepository) ListBySubmitterID(ctx context.Context, submitterID string) ([]entities.Request, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsSubmitterIDIndex),
		KeyConditionExpression: aws.String("submitter_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: submitterID},
		},
	})
	if err != nil {
		return nil, err
	}

	requests := make([]entities.Request, 0, len(out.Items))
	for _, raw := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		req, err := fromRequestItem(it)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *RequestDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrItemGone
		}
		return err
	}
	return nil
}

func toRequestItem(req entities.Request) (requestItem, error) {
	var details any
	switch {
	case req.Melhoria != nil:
		details = req.Melhoria
	case req.Sustentacao != nil:
		details = req.Sustentacao
	case req.NovoProjeto != nil:
		details = req.NovoProjeto
	}

	it := requestItem{
		ID:          req.ID,
		Kind:        string(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		Department:  req.Department,
		Technology:  req.Technology,
		SubmitterID: req.SubmitterID,
		CreatedAt:   timeToString(req.CreatedAt),
	}
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return requestItem{}, err
		}
		it.Details = string(b)
	}
	return it, nil
}

func fromRequestItem(it requestItem) (entities.Request, error) {
	req := entities.Request{
		ID:          it.ID,
		Kind:        entities.RequestKind(it.Kind),
		Title:       it.Title,
		Description: it.Description,
		Department:  it.Department,
		Technology:  it.Technology,
		SubmitterID: it.SubmitterID,
		CreatedAt:   stringToTime(it.CreatedAt),
	}
	if it.Details == "" {
		return req, nil
	}

	switch req.Kind {
	case entities.RequestKindMelhoria:
		var d entities.MelhoriaDetails
		if err := json.Unmarshal([]byte(it.Details), &d); err != nil {
			return entities.Request{}, err
		}
		req.Melhoria = &d
	case entities.RequestKindSustentacao:
		var d entities.SustentacaoDetails
		if err := json.Unmarshal([]byte(it.Details), &d); err != nil {
			return entities.Request{}, err
		}
		req.Sustentacao = &d
	case entities.RequestKindNovoProjeto:
		var d entities.NovoProjetoDetails
		if err := json.Unmarshal([]byte(it.Details), &d); err != nil {
			return entities.Request{}, err
		}
		req.NovoProjeto = &d
	}
	return req, nil
}
