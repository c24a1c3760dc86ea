package repository

import (
	"context"
	"strings"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubmittersTableName = "submitters"
	submittersEmailIndex       = "email-index"
)

type submitterItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Email             string `dynamodbav:"email"`
	Phone             string `dynamodbav:"phone,omitempty"`
	Department        string `dynamodbav:"department,omitempty"`
	Company           string `dynamodbav:"company,omitempty"`
	Role              string `dynamodbav:"role,omitempty"`
	UserRole          string `dynamodbav:"user_role"`
	IsActive          bool   `dynamodbav:"is_active"`
	RequestsSubmitted int    `dynamodbav:"requests_submitted"`
	LastActivity      string `dynamodbav:"last_activity,omitempty"`
	JoinedAt          string `dynamodbav:"joined_at"`
}

// SubmitterDynamoRepository persists Submitter entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Emails are stored lower-cased; callers normalize before lookup.

type SubmitterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmitterRepository = (*SubmitterDynamoRepository)(nil)

func NewSubmitterDynamoRepository(ddb *dynamodb.Client) *SubmitterDynamoRepository {
	return &SubmitterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMITTERS_TABLE", defaultSubmittersTableName),
	}
}

func (r *SubmitterDynamoRepository) Create(ctx context.Context, s entities.Submitter) (entities.Submitter, error) {
	av, err := attributevalue.MarshalMap(toSubmitterItem(s))
	if err != nil {
		return entities.Submitter{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Submitter{}, err
	}
	return s, nil
}

func (r *SubmitterDynamoRepository) GetByID(ctx context.Context, id string) (entities.Submitter, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submitter{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submitter{}, nil
	}

	var it submitterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Submitter{}, err
	}
	return fromSubmitterItem(it), nil
}

func (r *SubmitterDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Submitter, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submittersEmailIndex),
		KeyConditionExpression: aws.String("email = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Submitter{}, err
	}
	if len(out.Items) == 0 {
		return entities.Submitter{}, nil
	}

	var it submitterItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Submitter{}, err
	}
	return fromSubmitterItem(it), nil
}

func (r *SubmitterDynamoRepository) GetAll(ctx context.Context) ([]entities.Submitter, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	submitters := make([]entities.Submitter, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it submitterItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			submitters = append(submitters, fromSubmitterItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return submitters, nil
}

func (r *SubmitterDynamoRepository) Update(ctx context.Context, s entities.Submitter) (entities.Submitter, error) {
	av, err := attributevalue.MarshalMap(toSubmitterItem(s))
	if err != nil {
		return entities.Submitter{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Submitter{}, interfaces.ErrItemGone
		}
		return entities.Submitter{}, err
	}
	return s, nil
}

func toSubmitterItem(s entities.Submitter) submitterItem {
	return submitterItem{
		ID:                s.ID,
		Name:              s.Name,
		Email:             strings.ToLower(s.Email),
		Phone:             s.Phone,
		Department:        s.Department,
		Company:           s.Company,
		Role:              s.Role,
		UserRole:          string(s.UserRole),
		IsActive:          s.IsActive,
		RequestsSubmitted: s.RequestsSubmitted,
		LastActivity:      timePtrToString(s.LastActivity),
		JoinedAt:          timeToString(s.JoinedAt),
	}
}

func fromSubmitterItem(it submitterItem) entities.Submitter {
	return entities.Submitter{
		ID:                it.ID,
		Name:              it.Name,
		Email:             it.Email,
		Phone:             it.Phone,
		Department:        it.Department,
		Company:           it.Company,
		Role:              it.Role,
		UserRole:          entities.UserRole(it.UserRole),
		IsActive:          it.IsActive,
		RequestsSubmitted: it.RequestsSubmitted,
		LastActivity:      stringToTimePtr(it.LastActivity),
		JoinedAt:          stringToTime(it.JoinedAt),
	}
}
