package repository

import (
	"context"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRobotsTableName = "robots"

type robotItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Cell          string `dynamodbav:"cell,omitempty"`
	Technology    string `dynamodbav:"technology,omitempty"`
	ExecutionType string `dynamodbav:"execution_type,omitempty"`
	Client        string `dynamodbav:"client,omitempty"`
	Status        string `dynamodbav:"status,omitempty"`
}

// RobotDynamoRepository persists Robot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type RobotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRobotRepository = (*RobotDynamoRepository)(nil)

func NewRobotDynamoRepository(ddb *dynamodb.Client) *RobotDynamoRepository {
	return &RobotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROBOTS_TABLE", defaultRobotsTableName),
	}
}

func (r *RobotDynamoRepository) Create(ctx context.Context, robot entities.Robot) (entities.Robot, error) {
	av, err := attributevalue.MarshalMap(toRobotItem(robot))
	if err != nil {
		return entities.Robot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Robot{}, err
	}
	return robot, nil
}

func (r *RobotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Robot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Robot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Robot{}, nil
	}

	var it robotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Robot{}, err
	}
	return fromRobotItem(it), nil
}

func (r *RobotDynamoRepository) GetAll(ctx context.Context) ([]entities.Robot, error) {
	return r.scan(ctx, "", nil, nil)
}

func (r *RobotDynamoRepository) Update(ctx context.Context, robot entities.Robot) (entities.Robot, error) {
	av, err := attributevalue.MarshalMap(toRobotItem(robot))
	if err != nil {
		return entities.Robot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Robot{}, interfaces.ErrItemGone
		}
		return entities.Robot{}, err
	}
	return robot, nil
}

func (r *RobotDynamoRepository) DeleteByID(ctx context.Context, id string) error {
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

func (r *RobotDynamoRepository) ListByCell(ctx context.Context, cell string) ([]entities.Robot, error) {
	return r.scanByField(ctx, "cell", cell)
}

func (r *RobotDynamoRepository) ListByExecutionType(ctx context.Context, t entities.ExecutionType) ([]entities.Robot, error) {
	return r.scanByField(ctx, "execution_type", string(t))
}

func (r *RobotDynamoRepository) ListByStatus(ctx context.Context, s entities.RobotStatus) ([]entities.Robot, error) {
	return r.scanByField(ctx, "status", string(s))
}

func (r *RobotDynamoRepository) scanByField(ctx context.Context, field, value string) ([]entities.Robot, error) {
	return r.scan(ctx,
		"#f = :v",
		map[string]string{"#f": field},
		map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
	)
}

func (r *RobotDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Robot, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	robots := make([]entities.Robot, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it robotItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			robots = append(robots, fromRobotItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return robots, nil
}

func toRobotItem(r entities.Robot) robotItem {
	return robotItem{
		ID:            r.ID,
		Name:          r.Name,
		Cell:          r.Cell,
		Technology:    r.Technology,
		ExecutionType: string(r.ExecutionType),
		Client:        r.Client,
		Status:        string(r.Status),
	}
}

func fromRobotItem(it robotItem) entities.Robot {
	return entities.Robot{
		ID:            it.ID,
		Name:          it.Name,
		Cell:          it.Cell,
		Technology:    it.Technology,
		ExecutionType: entities.ExecutionType(it.ExecutionType),
		Client:        it.Client,
		Status:        entities.RobotStatus(it.Status),
	}
}
