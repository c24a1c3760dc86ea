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

const defaultDpDimensionsTableName = "dp_dimensions"

type dpDimensionItem struct {
	Kind     string `dynamodbav:"kind"`
	ID       string `dynamodbav:"id"`
	CellID   string `dynamodbav:"cell_id,omitempty"`
	ClientID string `dynamodbav:"client_id,omitempty"`
	Name     string `dynamodbav:"name"`
}

// DpDynamoRepository reads the DP data-warehouse dimension rows. An external
// warehouse load owns the table; this repository only scans it.
//
// Table requirements:
//   - PK: kind (string: cell | client | service), SK: id (string)

type DpDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDpRepository = (*DpDynamoRepository)(nil)

func NewDpDynamoRepository(ddb *dynamodb.Client) *DpDynamoRepository {
	return &DpDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DP_DIMENSIONS_TABLE", defaultDpDimensionsTableName),
	}
}

func (r *DpDynamoRepository) ListCells(ctx context.Context) ([]entities.DpDimension, error) {
	return r.queryKind(ctx, "cell", "", nil)
}

func (r *DpDynamoRepository) ListClientsByCell(ctx context.Context, cellID string) ([]entities.DpDimension, error) {
	return r.queryKind(ctx, "client",
		"cell_id = :cell",
		map[string]types.AttributeValue{":cell": &types.AttributeValueMemberS{Value: cellID}},
	)
}

func (r *DpDynamoRepository) ListServicesByCellAndClient(ctx context.Context, cellID, clientID string) ([]entities.DpDimension, error) {
	return r.queryKind(ctx, "service",
		"cell_id = :cell AND client_id = :client",
		map[string]types.AttributeValue{
			":cell":   &types.AttributeValueMemberS{Value: cellID},
			":client": &types.AttributeValueMemberS{Value: clientID},
		},
	)
}

func (r *DpDynamoRepository) queryKind(ctx context.Context, kind, filter string, filterValues map[string]types.AttributeValue) ([]entities.DpDimension, error) {
	values := map[string]types.AttributeValue{
		":kind": &types.AttributeValueMemberS{Value: kind},
	}
	for k, v := range filterValues {
		values[k] = v
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("kind = :kind"),
		ExpressionAttributeValues: values,
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
	}

	dims := make([]entities.DpDimension, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it dpDimensionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			dims = append(dims, entities.DpDimension{
				CellID:   it.CellID,
				ClientID: it.ClientID,
				ID:       it.ID,
				Name:     it.Name,
				Kind:     it.Kind,
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return dims, nil
}
