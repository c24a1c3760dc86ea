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

const (
	defaultDemandsTableName     = "demands"
	defaultDemandNamesTableName = "demand_names"
)

type demandItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	DocHours     string `dynamodbav:"doc_hours"`
	DevHours     string `dynamodbav:"dev_hours"`
	Type         string `dynamodbav:"type"`
	Description  string `dynamodbav:"description,omitempty"`
	FocalPointID string `dynamodbav:"focal_point_id"`
	AnalystID    string `dynamodbav:"analyst_id"`
	ProjectID    string `dynamodbav:"project_id"`
	RobotID      string `dynamodbav:"robot_id"`
	Status       string `dynamodbav:"status"`
	OpenedAt     string `dynamodbav:"opened_at,omitempty"`
	StartAt      string `dynamodbav:"start_at,omitempty"`
	EndsAt       string `dynamodbav:"ends_at,omitempty"`
	EndedAt      string `dynamodbav:"ended_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	ROI          string `dynamodbav:"roi,omitempty"`
	Client       string `dynamodbav:"client,omitempty"`
	Service      string `dynamodbav:"service,omitempty"`
}

// DemandDynamoRepository persists Demand entities in DynamoDB.
//
// Table requirements:
//   - demands: PK id (string)
//   - demand_names: PK name (string), holding {name, demand_id} guard items
//
// Name uniqueness is enforced by writing the guard item and the demand item
// in one TransactWriteItems call: two concurrent creates of the same name
// cannot both commit.

type DemandDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	namesTable string
}

var _ interfaces.IDemandRepository = (*DemandDynamoRepository)(nil)

func NewDemandDynamoRepository(ddb *dynamodb.Client) *DemandDynamoRepository {
	return &DemandDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("DEMANDS_TABLE", defaultDemandsTableName),
		namesTable: getenvDefault("DEMAND_NAMES_TABLE", defaultDemandNamesTableName),
	}
}

func (r *DemandDynamoRepository) Create(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	av, err := attributevalue.MarshalMap(toDemandItem(d))
	if err != nil {
		return entities.Demand{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.namesTable),
					Item:                     nameGuardItem(d.Name, d.ID),
					ConditionExpression:      aws.String("attribute_not_exists(#n)"),
					ExpressionAttributeNames: map[string]string{"#n": "name"},
				},
			},
		},
	})
	if err != nil {
		if hasConditionFailureAt(err, 1) {
			return entities.Demand{}, interfaces.ErrDuplicateName
		}
		return entities.Demand{}, err
	}
	return d, nil
}

func (r *DemandDynamoRepository) Update(ctx context.Context, d entities.Demand, previousName string) (entities.Demand, error) {
	av, err := attributevalue.MarshalMap(toDemandItem(d))
	if err != nil {
		return entities.Demand{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	if previousName != d.Name {
		items = append(items,
			types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: aws.String(r.namesTable),
					Key: map[string]types.AttributeValue{
						"name": &types.AttributeValueMemberS{Value: previousName},
					},
				},
			},
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:                aws.String(r.namesTable),
					Item:                     nameGuardItem(d.Name, d.ID),
					ConditionExpression:      aws.String("attribute_not_exists(#n)"),
					ExpressionAttributeNames: map[string]string{"#n": "name"},
				},
			},
		)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if hasConditionFailureAt(err, 0) {
			return entities.Demand{}, interfaces.ErrItemGone
		}
		if hasConditionFailureAt(err, 2) {
			return entities.Demand{}, interfaces.ErrDuplicateName
		}
		return entities.Demand{}, err
	}
	return d, nil
}

func (r *DemandDynamoRepository) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Demand{}, err
	}
	if len(out.Item) == 0 {
		return entities.Demand{}, nil
	}

	var it demandItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Demand{}, err
	}
	return fromDemandItem(it), nil
}

func (r *DemandDynamoRepository) GetAll(ctx context.Context) ([]entities.Demand, error) {
	return r.scan(ctx, "", nil, nil)
}

func (r *DemandDynamoRepository) GetNameOwner(ctx context.Context, name string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.namesTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var guard struct {
		DemandID string `dynamodbav:"demand_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return "", err
	}
	return guard.DemandID, nil
}

func (r *DemandDynamoRepository) DeleteByID(ctx context.Context, id, name string) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression:      aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.namesTable),
					Key: map[string]types.AttributeValue{
						"name": &types.AttributeValueMemberS{Value: name},
					},
				},
			},
		},
	})
	if err != nil {
		if hasConditionFailureAt(err, 0) {
			return interfaces.ErrItemGone
		}
		return err
	}
	return nil
}

func (r *DemandDynamoRepository) ListByStatus(ctx context.Context, status entities.DemandStatus) ([]entities.Demand, error) {
	return r.scanByField(ctx, "status", string(status))
}

func (r *DemandDynamoRepository) ListByType(ctx context.Context, t entities.ServiceType) ([]entities.Demand, error) {
	return r.scanByField(ctx, "type", string(t))
}

func (r *DemandDynamoRepository) ListByAnalystID(ctx context.Context, analystID string) ([]entities.Demand, error) {
	return r.scanByField(ctx, "analyst_id", analystID)
}

func (r *DemandDynamoRepository) ListByFocalPointID(ctx context.Context, focalPointID string) ([]entities.Demand, error) {
	return r.scanByField(ctx, "focal_point_id", focalPointID)
}

func (r *DemandDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Demand, error) {
	return r.scanByField(ctx, "project_id", projectID)
}

func (r *DemandDynamoRepository) ListByRobotID(ctx context.Context, robotID string) ([]entities.Demand, error) {
	return r.scanByField(ctx, "robot_id", robotID)
}

func (r *DemandDynamoRepository) ListByClient(ctx context.Context, client string) ([]entities.Demand, error) {
	return r.scanByField(ctx, "client", client)
}

func (r *DemandDynamoRepository) ListByService(ctx context.Context, service string) ([]entities.Demand, error) {
	return r.scanByField(ctx, "service", service)
}

func (r *DemandDynamoRepository) scanByField(ctx context.Context, field, value string) ([]entities.Demand, error) {
	return r.scan(ctx,
		"#f = :v",
		map[string]string{"#f": field},
		map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
	)
}

// scan pages through the demands table. The demand population is a few
// hundred rows of team-internal data; a filtered scan is adequate here where
// a relational source would use an index.
func (r *DemandDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Demand, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	demands := make([]entities.Demand, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it demandItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			demands = append(demands, fromDemandItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return demands, nil
}

func nameGuardItem(name, demandID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"name":      &types.AttributeValueMemberS{Value: name},
		"demand_id": &types.AttributeValueMemberS{Value: demandID},
	}
}

func toDemandItem(d entities.Demand) demandItem {
	return demandItem{
		ID:           d.ID,
		Name:         d.Name,
		DocHours:     floatToString(d.DocHours),
		DevHours:     floatToString(d.DevHours),
		Type:         string(d.Type),
		Description:  d.Description,
		FocalPointID: d.FocalPointID,
		AnalystID:    d.AnalystID,
		ProjectID:    d.ProjectID,
		RobotID:      d.RobotID,
		Status:       string(d.Status),
		OpenedAt:     timePtrToString(d.OpenedAt),
		StartAt:      timePtrToString(d.StartAt),
		EndsAt:       timePtrToString(d.EndsAt),
		EndedAt:      timePtrToString(d.EndedAt),
		CreatedAt:    timeToString(d.CreatedAt),
		ROI:          d.ROI,
		Client:       d.Client,
		Service:      d.Service,
	}
}

func fromDemandItem(it demandItem) entities.Demand {
	return entities.Demand{
		ID:           it.ID,
		Name:         it.Name,
		DocHours:     stringToFloat(it.DocHours),
		DevHours:     stringToFloat(it.DevHours),
		Type:         entities.ServiceType(it.Type),
		Description:  it.Description,
		FocalPointID: it.FocalPointID,
		AnalystID:    it.AnalystID,
		ProjectID:    it.ProjectID,
		RobotID:      it.RobotID,
		Status:       entities.DemandStatus(it.Status),
		OpenedAt:     stringToTimePtr(it.OpenedAt),
		StartAt:      stringToTimePtr(it.StartAt),
		EndsAt:       stringToTimePtr(it.EndsAt),
		EndedAt:      stringToTimePtr(it.EndedAt),
		CreatedAt:    stringToTime(it.CreatedAt),
		ROI:          it.ROI,
		Client:       it.Client,
		Service:      it.Service,
	}
}
