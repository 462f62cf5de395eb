package puzzle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

const (
	datePKPrefix  = "DATE#"
	inputPKPrefix = "INPUT#"
)

// DDBArchive implements ArchiveStore backed by a DynamoDB table. Each
// puzzle is stored twice, once under its date and once under its
// normalized input, so both lookups are single-item reads.
//
// Table schema:
//   - Partition key: pk (string), "DATE#YYYY-MM-DD" or "INPUT#<normalized>"
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name letterbox-archive \
//	  --attribute-definitions AttributeName=pk,AttributeType=S \
//	  --key-schema AttributeName=pk,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type DDBArchive struct {
	client    DDBClient
	tableName string
}

// NewDDBArchive creates a DynamoDB-backed archive over the given table.
func NewDDBArchive(client DDBClient, tableName string) *DDBArchive {
	return &DDBArchive{
		client:    client,
		tableName: tableName,
	}
}

func (a *DDBArchive) Record(ctx context.Context, p Puzzle) error {
	dateStr := p.Date.Format(DateLayout)

	for _, pk := range []string{datePKPrefix + dateStr, inputPKPrefix + p.Normalized()} {
		_, err := a.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(a.tableName),
			Item: map[string]types.AttributeValue{
				"pk":    &types.AttributeValueMemberS{Value: pk},
				"date":  &types.AttributeValueMemberS{Value: dateStr},
				"input": &types.AttributeValueMemberS{Value: p.Input},
			},
		})
		if err != nil {
			return fmt.Errorf("put archive item %q: %w", pk, err)
		}
	}

	return nil
}

func (a *DDBArchive) ByDate(ctx context.Context, date time.Time) (Puzzle, error) {
	return a.getItem(ctx, datePKPrefix+date.Format(DateLayout))
}

func (a *DDBArchive) ByInput(ctx context.Context, input string) (Puzzle, error) {
	return a.getItem(ctx, inputPKPrefix+Normalize(input))
}

func (a *DDBArchive) Dates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time

	var startKey map[string]types.AttributeValue

	for {
		resp, err := a.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(a.tableName),
			FilterExpression: aws.String("begins_with(pk, :p)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":p": &types.AttributeValueMemberS{Value: datePKPrefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan archive: %w", err)
		}

		for _, item := range resp.Items {
			dateStr, err := stringAttr(item, "date")
			if err != nil {
				return nil, err
			}

			date, err := time.Parse(DateLayout, dateStr)
			if err != nil {
				return nil, fmt.Errorf("archived date %q: %w", dateStr, err)
			}

			dates = append(dates, date)
		}

		if resp.LastEvaluatedKey == nil {
			break
		}
		startKey = resp.LastEvaluatedKey
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	return dates, nil
}

func (a *DDBArchive) getItem(ctx context.Context, pk string) (Puzzle, error) {
	resp, err := a.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(a.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
	if err != nil {
		return Puzzle{}, fmt.Errorf("get archive item %q: %w", pk, err)
	}

	if resp.Item == nil {
		return Puzzle{}, ErrNotArchived
	}

	dateStr, err := stringAttr(resp.Item, "date")
	if err != nil {
		return Puzzle{}, err
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return Puzzle{}, fmt.Errorf("archived date %q: %w", dateStr, err)
	}

	input, err := stringAttr(resp.Item, "input")
	if err != nil {
		return Puzzle{}, err
	}

	return Puzzle{Date: date, Input: input}, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	attr, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("invalid %s attribute in archive item", name)
	}

	return attr.Value, nil
}
