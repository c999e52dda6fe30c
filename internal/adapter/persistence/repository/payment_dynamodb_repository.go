package repository

import (
	"context"
	"errors"
	"time"

	"associacao_pro/internal/domain/entities"
	"associacao_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsCustomerIDIndex  = "customer_id-index"

	dateOnlyFormat = "2006-01-02"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	CustomerID         string                 `dynamodbav:"customer_id"`
	Value              string                 `dynamodbav:"value"`
	NetValue           string                 `dynamodbav:"net_value"`
	BillingType        string                 `dynamodbav:"billing_type"`
	Status             string                 `dynamodbav:"status"`
	DueDate            string                 `dynamodbav:"due_date"`
	Description        string                 `dynamodbav:"description,omitempty"`
	ExternalReference  string                 `dynamodbav:"external_reference,omitempty"`
	PixQrCode          string                 `dynamodbav:"pix_qr_code,omitempty"`
	BankSlipURL        string                 `dynamodbav:"bank_slip_url,omitempty"`
	Date               string                 `dynamodbav:"date"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, gateway-assigned)
//   - GSI: customer_id-index (PK: customer_id)
//
// Monetary values are stored as decimal strings to keep currency precision.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#id":     "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		// Missing item reads the same as "not stored": zero value, no error.
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		CustomerID:         p.CustomerID,
		Value:              p.Value.String(),
		NetValue:           p.NetValue.String(),
		BillingType:        string(p.BillingType),
		Status:             string(p.Status),
		DueDate:            p.DueDate.UTC().Format(dateOnlyFormat),
		Description:        p.Description,
		ExternalReference:  p.ExternalReference,
		PixQrCode:          p.PixQrCode,
		BankSlipURL:        p.BankSlipURL,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	value, _ := decimal.NewFromString(it.Value)
	netValue, _ := decimal.NewFromString(it.NetValue)
	dueDate, _ := time.Parse(dateOnlyFormat, it.DueDate)
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Payment{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		Value:              value,
		NetValue:           netValue,
		BillingType:        entities.BillingType(it.BillingType),
		Status:             entities.PaymentStatus(it.Status),
		DueDate:            dueDate,
		Description:        it.Description,
		ExternalReference:  it.ExternalReference,
		PixQrCode:          it.PixQrCode,
		BankSlipURL:        it.BankSlipURL,
		Date:               date,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
