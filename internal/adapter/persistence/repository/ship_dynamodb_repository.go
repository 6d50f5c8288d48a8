package repository

import (
	"context"

	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultShipsTableName = "ships"
	shipsCompanyIndex     = "company-index"
)

type shipItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	IMO     string `dynamodbav:"imo,omitempty"`
	Company string `dynamodbav:"company"`
	Flag    string `dynamodbav:"flag,omitempty"`

	AnniversaryDay          int    `dynamodbav:"anniversary_day,omitempty"`
	AnniversaryMonth        int    `dynamodbav:"anniversary_month,omitempty"`
	SpecialSurveyCycleStart string `dynamodbav:"special_survey_cycle_start,omitempty"`
	DeliveryDate            string `dynamodbav:"delivery_date,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ShipDynamoRepository persists Ship entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company-index (PK: company)

type ShipDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IShipRepository = (*ShipDynamoRepository)(nil)

func NewShipDynamoRepository(ddb DynamoAPI) *ShipDynamoRepository {
	return &ShipDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPS_TABLE", defaultShipsTableName),
	}
}

func (r *ShipDynamoRepository) Create(ctx context.Context, s entities.Ship) (entities.Ship, error) {
	av, err := attributevalue.MarshalMap(toShipItem(s))
	if err != nil {
		return entities.Ship{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Ship{}, err
	}
	return s, nil
}

func (r *ShipDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ship, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ship{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ship{}, nil
	}

	var it shipItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ship{}, err
	}
	return fromShipItem(it), nil
}

func (r *ShipDynamoRepository) ListByCompany(ctx context.Context, company string) ([]entities.Ship, error) {
	items, err := queryIndex[shipItem](ctx, r.ddb, r.tableName, shipsCompanyIndex, "company", company)
	if err != nil {
		return nil, err
	}

	ships := make([]entities.Ship, 0, len(items))
	for _, it := range items {
		ships = append(ships, fromShipItem(it))
	}
	return ships, nil
}

func toShipItem(s entities.Ship) shipItem {
	return shipItem{
		ID:                      s.ID,
		Name:                    s.Name,
		IMO:                     s.IMO,
		Company:                 s.Company,
		Flag:                    s.Flag,
		AnniversaryDay:          s.AnniversaryDay,
		AnniversaryMonth:        s.AnniversaryMonth,
		SpecialSurveyCycleStart: s.SpecialSurveyCycleStart,
		DeliveryDate:            s.DeliveryDate,
		CreatedAt:               formatTime(s.CreatedAt),
		UpdatedAt:               formatTime(s.UpdatedAt),
	}
}

func fromShipItem(it shipItem) entities.Ship {
	return entities.Ship{
		ID:                      it.ID,
		Name:                    it.Name,
		IMO:                     it.IMO,
		Company:                 it.Company,
		Flag:                    it.Flag,
		AnniversaryDay:          it.AnniversaryDay,
		AnniversaryMonth:        it.AnniversaryMonth,
		SpecialSurveyCycleStart: it.SpecialSurveyCycleStart,
		DeliveryDate:            it.DeliveryDate,
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
}
