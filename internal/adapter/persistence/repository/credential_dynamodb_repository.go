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
)

const (
	defaultCredentialsTableName = "credentials"
	credentialsIDIndex          = "id-index"
)

type credentialItem struct {
	PaymentID         string `dynamodbav:"payment_id"`
	ID                string `dynamodbav:"id"`
	SubjectName       string `dynamodbav:"subject_name"`
	SubjectRole       string `dynamodbav:"subject_role,omitempty"`
	SubjectEmail      string `dynamodbav:"subject_email"`
	PhotoRef          string `dynamodbav:"photo_ref,omitempty"`
	QRCode            string `dynamodbav:"qr_code"`
	IssuedAt          string `dynamodbav:"issued_at"`
	ExpiresAt         string `dynamodbav:"expires_at"`
	VerificationToken string `dynamodbav:"verification_token"`
	Status            string `dynamodbav:"status"`
}

// CredentialDynamoRepository persists Credential entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string) — the conditional put on it is the
//     at-most-one-credential-per-payment guard
//   - GSI: id-index (PK: id) — validation lookups arrive by credential id

type CredentialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICredentialRepository = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb *dynamodb.Client) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDENTIALS_TABLE", defaultCredentialsTableName),
	}
}

func (r *CredentialDynamoRepository) Create(ctx context.Context, c entities.Credential) (entities.Credential, error) {
	it := toCredentialItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Credential{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(payment_id)"),
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return entities.Credential{}, interfaces.ErrCredentialConflict
		}
		return entities.Credential{}, err
	}
	return c, nil
}

func (r *CredentialDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Credential, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Credential{}, err
	}
	if len(out.Item) == 0 {
		return entities.Credential{}, nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Credential{}, err
	}
	return fromCredentialItem(it), nil
}

func (r *CredentialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Credential, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(credentialsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Credential{}, err
	}
	if len(out.Items) == 0 {
		return entities.Credential{}, nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Credential{}, err
	}
	return fromCredentialItem(it), nil
}

func toCredentialItem(c entities.Credential) credentialItem {
	return credentialItem{
		PaymentID:         c.PaymentID,
		ID:                c.ID,
		SubjectName:       c.SubjectName,
		SubjectRole:       c.SubjectRole,
		SubjectEmail:      c.SubjectEmail,
		PhotoRef:          c.PhotoRef,
		QRCode:            c.QRCode,
		IssuedAt:          c.IssuedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:         c.ExpiresAt.UTC().Format(time.RFC3339Nano),
		VerificationToken: c.VerificationToken,
		Status:            string(c.Status),
	}
}

func fromCredentialItem(it credentialItem) entities.Credential {
	issuedAt, _ := time.Parse(time.RFC3339Nano, it.IssuedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.Credential{
		PaymentID:         it.PaymentID,
		ID:                it.ID,
		SubjectName:       it.SubjectName,
		SubjectRole:       it.SubjectRole,
		SubjectEmail:      it.SubjectEmail,
		PhotoRef:          it.PhotoRef,
		QRCode:            it.QRCode,
		IssuedAt:          issuedAt,
		ExpiresAt:         expiresAt,
		VerificationToken: it.VerificationToken,
		Status:            entities.CredentialStatus(it.Status),
	}
}
