package repository

import (
	"context"
	"sort"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTrackingsTableName = "trackings"
	trackingsDemandIDIndex    = "demand_id-index"
	trackingsSubmitterIDIndex = "submitter_id-index"
)

type trackingItem struct {
	ID          string `dynamodbav:"id"`
	DemandID    string `dynamodbav:"demand_id"`
	Hours       string `dynamodbav:"hours"`
	Nature      string `dynamodbav:"nature"`
	Description string `dynamodbav:"description,omitempty"`
	SubmittedAt string `dynamodbav:"submitted_at"`
	SubmitterID string `dynamodbav:"submitter_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TrackingDynamoRepository persists Tracking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: demand_id-index (PK: demand_id)
//   - GSI: submitter_id-index (PK: submitter_id)
//
// Create commits the tracking put together with a condition check on the
// referenced demand item, so the blocked gate cannot be bypassed by a status
// change racing the insert.

type TrackingDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	demandsTable string
}

var _ interfaces.ITrackingRepository = (*TrackingDynamoRepository)(nil)

func NewTrackingDynamoRepository(ddb *dynamodb.Client) *TrackingDynamoRepository {
	return &TrackingDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("TRACKINGS_TABLE", defaultTrackingsTableName),
		demandsTable: getenvDefault("DEMANDS_TABLE", defaultDemandsTableName),
	}
}

func (r *TrackingDynamoRepository) Create(ctx context.Context, t entities.Tracking) (entities.Tracking, error) {
	av, err := attributevalue.MarshalMap(toTrackingItem(t))
	if err != nil {
		return entities.Tracking{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(r.demandsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: t.DemandID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :blocked"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":blocked": &types.AttributeValueMemberS{Value: string(entities.DemandStatusBlocked)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		if hasConditionFailureAt(err, 0) {
			return entities.Tracking{}, interfaces.ErrDemandUnavailable
		}
		return entities.Tracking{}, err
	}
	return t, nil
}

func (r *TrackingDynamoRepository) Update(ctx context.Context, t entities.Tracking) (entities.Tracking, error) {
	av, err := attributevalue.MarshalMap(toTrackingItem(t))
	if err != nil {
		return entities.Tracking{}, err
	}

	// No demand condition check here: updates bypass the blocked gate.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Tracking{}, interfaces.ErrItemGone
		}
		return entities.Tracking{}, err
	}
	return t, nil
}

func (r *TrackingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tracking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tracking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tracking{}, nil
	}

	var it trackingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tracking{}, err
	}
	return fromTrackingItem(it), nil
}

func (r *TrackingDynamoRepository) GetAll(ctx context.Context) ([]entities.Tracking, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	trackings := make([]entities.Tracking, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalTrackings(out.Items)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return trackings, nil
}

func (r *TrackingDynamoRepository) DeleteByID(ctx context.Context, id string) error {
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

func (r *TrackingDynamoRepository) ListByDemandID(ctx context.Context, demandID string) ([]entities.Tracking, error) {
	trackings, err := r.queryIndex(ctx, trackingsDemandIDIndex, "demand_id", demandID)
	if err != nil {
		return nil, err
	}
	sortBySubmittedAtDesc(trackings)
	return trackings, nil
}

func (r *TrackingDynamoRepository) ListBySubmitterID(ctx context.Context, submitterID string) ([]entities.Tracking, error) {
	trackings, err := r.queryIndex(ctx, trackingsSubmitterIDIndex, "submitter_id", submitterID)
	if err != nil {
		return nil, err
	}
	sortBySubmittedAtDesc(trackings)
	return trackings, nil
}

func (r *TrackingDynamoRepository) ListByNature(ctx context.Context, nature entities.Nature) ([]entities.Tracking, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#n = :n"),
		ExpressionAttributeNames: map[string]string{"#n": "nature"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: string(nature)},
		},
	}

	trackings := make([]entities.Tracking, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalTrackings(out.Items)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return trackings, nil
}

func (r *TrackingDynamoRepository) SumHoursByDemandID(ctx context.Context, demandID string) (float64, error) {
	trackings, err := r.queryIndex(ctx, trackingsDemandIDIndex, "demand_id", demandID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, t := range trackings {
		total += t.Hours
	}
	return total, nil
}

func (r *TrackingDynamoRepository) SumHoursByDemandIDAndNature(ctx context.Context, demandID string, nature entities.Nature) (float64, error) {
	trackings, err := r.queryIndex(ctx, trackingsDemandIDIndex, "demand_id", demandID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, t := range trackings {
		if t.Nature == nature {
			total += t.Hours
		}
	}
	return total, nil
}

func (r *TrackingDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Tracking, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}

	trackings := make([]entities.Tracking, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalTrackings(out.Items)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return trackings, nil
}

func unmarshalTrackings(raw []map[string]types.AttributeValue) ([]entities.Tracking, error) {
	items := make([]entities.Tracking, 0, len(raw))
	for _, m := range raw {
		var it trackingItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTrackingItem(it))
	}
	return items, nil
}

func sortBySubmittedAtDesc(ts []entities.Tracking) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].SubmittedAt.After(ts[j].SubmittedAt)
	})
}

func toTrackingItem(t entities.Tracking) trackingItem {
	return trackingItem{
		ID:          t.ID,
		DemandID:    t.DemandID,
		Hours:       floatToString(t.Hours),
		Nature:      string(t.Nature),
		Description: t.Description,
		SubmittedAt: timeToString(t.SubmittedAt),
		SubmitterID: t.SubmitterID,
		CreatedAt:   timeToString(t.CreatedAt),
	}
}

func fromTrackingItem(it trackingItem) entities.Tracking {
	return entities.Tracking{
		ID:          it.ID,
		DemandID:    it.DemandID,
		Hours:       stringToFloat(it.Hours),
		Nature:      entities.Nature(it.Nature),
		Description: it.Description,
		SubmittedAt: stringToTime(it.SubmittedAt),
		SubmitterID: it.SubmitterID,
		CreatedAt:   stringToTime(it.CreatedAt),
	}
}
