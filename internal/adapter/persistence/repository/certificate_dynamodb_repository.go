package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCertificatesTableName = "certificates"
	certificatesShipIDIndex      = "ship_id-index"
)

type certificateItem struct {
	ID       string `dynamodbav:"id"`
	ShipID   string `dynamodbav:"ship_id"`
	CertName string `dynamodbav:"cert_name"`
	CertType string `dynamodbav:"cert_type,omitempty"`
	CertNo   string `dynamodbav:"cert_no,omitempty"`
	IssuedBy string `dynamodbav:"issued_by,omitempty"`

	IssueDate   string `dynamodbav:"issue_date,omitempty"`
	ValidDate   string `dynamodbav:"valid_date,omitempty"`
	LastEndorse string `dynamodbav:"last_endorse,omitempty"`

	NextSurvey        string `dynamodbav:"next_survey"`
	NextSurveyDisplay string `dynamodbav:"next_survey_display"`
	NextSurveyType    string `dynamodbav:"next_survey_type"`
	NextSurveyDate    string `dynamodbav:"next_survey_date"`
	WindowKind        string `dynamodbav:"window_kind"`
	WindowMonths      int    `dynamodbav:"window_months"`
	WindowAnchor      string `dynamodbav:"window_anchor"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CertificateDynamoRepository persists Certificate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ship_id-index (PK: ship_id)

type CertificateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICertificateRepository = (*CertificateDynamoRepository)(nil)

func NewCertificateDynamoRepository(ddb DynamoAPI) *CertificateDynamoRepository {
	return &CertificateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CERTIFICATES_TABLE", defaultCertificatesTableName),
	}
}

func (r *CertificateDynamoRepository) Create(ctx context.Context, c entities.Certificate) (entities.Certificate, error) {
	av, err := attributevalue.MarshalMap(toCertificateItem(c))
	if err != nil {
		return entities.Certificate{}, err
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
		return entities.Certificate{}, err
	}
	return c, nil
}

func (r *CertificateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Certificate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Certificate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Certificate{}, nil
	}

	var it certificateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Certificate{}, err
	}
	return fromCertificateItem(it), nil
}

func (r *CertificateDynamoRepository) ListByShipID(ctx context.Context, shipID string) ([]entities.Certificate, error) {
	items, err := queryIndex[certificateItem](ctx, r.ddb, r.tableName, certificatesShipIDIndex, "ship_id", shipID)
	if err != nil {
		return nil, err
	}

	certs := make([]entities.Certificate, 0, len(items))
	for _, it := range items {
		certs = append(certs, fromCertificateItem(it))
	}
	return certs, nil
}

// Update overwrites an existing certificate. A missing certificate yields an
// empty result, not an error.
func (r *CertificateDynamoRepository) Update(ctx context.Context, c entities.Certificate) (entities.Certificate, error) {
	av, err := attributevalue.MarshalMap(toCertificateItem(c))
	if err != nil {
		return entities.Certificate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Certificate{}, nil
		}
		return entities.Certificate{}, err
	}
	return c, nil
}

// UpdateNextSurvey writes only the calculator-owned fields.
func (r *CertificateDynamoRepository) UpdateNextSurvey(ctx context.Context, id string, u entities.NextSurveyUpdate) (entities.Certificate, error) {
	updatedAt := u.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #next_survey = :next_survey, #next_survey_display = :next_survey, " +
			"#next_survey_type = :next_survey_type, #next_survey_date = :next_survey_date, " +
			"#window_kind = :window_kind, #window_months = :window_months, #window_anchor = :window_anchor, " +
			"#updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next_survey":      &types.AttributeValueMemberS{Value: u.NextSurvey},
			":next_survey_type": &types.AttributeValueMemberS{Value: u.NextSurveyType},
			":next_survey_date": &types.AttributeValueMemberS{Value: formatTimePtr(u.NextSurveyDate)},
			":window_kind":      &types.AttributeValueMemberS{Value: u.WindowKind},
			":window_months":    &types.AttributeValueMemberN{Value: strconv.Itoa(u.WindowMonths)},
			":window_anchor":    &types.AttributeValueMemberS{Value: formatTimePtr(u.WindowAnchor)},
			":updated_at":       &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#next_survey":         "next_survey",
			"#next_survey_display": "next_survey_display",
			"#next_survey_type":    "next_survey_type",
			"#next_survey_date":    "next_survey_date",
			"#window_kind":         "window_kind",
			"#window_months":       "window_months",
			"#window_anchor":       "window_anchor",
			"#updated_at":          "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Certificate{}, nil
		}
		return entities.Certificate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Certificate{}, nil
	}

	var it certificateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Certificate{}, err
	}
	return fromCertificateItem(it), nil
}

func toCertificateItem(c entities.Certificate) certificateItem {
	display := c.NextSurveyDisplay
	if display == "" {
		display = c.NextSurvey
	}
	return certificateItem{
		ID:                c.ID,
		ShipID:            c.ShipID,
		CertName:          c.CertName,
		CertType:          c.CertType,
		CertNo:            c.CertNo,
		IssuedBy:          c.IssuedBy,
		IssueDate:         c.IssueDate,
		ValidDate:         c.ValidDate,
		LastEndorse:       c.LastEndorse,
		NextSurvey:        c.NextSurvey,
		NextSurveyDisplay: display,
		NextSurveyType:    c.NextSurveyType,
		NextSurveyDate:    formatTimePtr(c.NextSurveyDate),
		WindowKind:        c.WindowKind,
		WindowMonths:      c.WindowMonths,
		WindowAnchor:      formatTimePtr(c.WindowAnchor),
		Status:            string(c.Status),
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func fromCertificateItem(it certificateItem) entities.Certificate {
	return entities.Certificate{
		ID:                it.ID,
		ShipID:            it.ShipID,
		CertName:          it.CertName,
		CertType:          it.CertType,
		CertNo:            it.CertNo,
		IssuedBy:          it.IssuedBy,
		IssueDate:         it.IssueDate,
		ValidDate:         it.ValidDate,
		LastEndorse:       it.LastEndorse,
		NextSurvey:        it.NextSurvey,
		NextSurveyDisplay: it.NextSurveyDisplay,
		NextSurveyType:    it.NextSurveyType,
		NextSurveyDate:    parseTimePtr(it.NextSurveyDate),
		WindowKind:        it.WindowKind,
		WindowMonths:      it.WindowMonths,
		WindowAnchor:      parseTimePtr(it.WindowAnchor),
		Status:            entities.CertificateStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
