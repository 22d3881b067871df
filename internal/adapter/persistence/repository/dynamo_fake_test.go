package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records requests and serves canned pages.
type fakeDynamo struct {
	getItem   map[string]types.AttributeValue
	getErr    error
	pages     [][]map[string]types.AttributeValue
	pageErr   error
	writeErr  error
	transacts []*dynamodb.TransactWriteItemsInput
	// orders and tokens model the conditional header put and request-token
	// idempotency of the real service.
	orders map[string]bool
	tokens map[string]string
	queries   []*dynamodb.QueryInput
	scans     int
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return f.nextPage(len(f.queries) - 1)
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans++
	out, err := f.nextPage(f.scans - 1)
	if err != nil {
		return nil, err
	}
	return &dynamodb.ScanOutput{Items: out.Items, LastEvaluatedKey: out.LastEvaluatedKey}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	if f.orders == nil {
		f.orders = make(map[string]bool)
		f.tokens = make(map[string]string)
	}

	header := in.TransactItems[0].Put
	id := header.Item["id"].(*types.AttributeValueMemberS).Value
	createdAt := header.Item["created_at"].(*types.AttributeValueMemberS).Value

	if in.ClientRequestToken != nil {
		if prev, ok := f.tokens[*in.ClientRequestToken]; ok {
			if prev != createdAt {
				return nil, &types.IdempotentParameterMismatchException{}
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}
	}
	if header.ConditionExpression != nil && f.orders[id] {
		reasons := make([]types.CancellationReason, len(in.TransactItems))
		for i := range reasons {
			reasons[i].Code = aws.String("None")
		}
		reasons[0].Code = aws.String("ConditionalCheckFailed")
		return nil, &types.TransactionCanceledException{CancellationReasons: reasons}
	}

	f.orders[id] = true
	if in.ClientRequestToken != nil {
		f.tokens[*in.ClientRequestToken] = createdAt
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) nextPage(i int) (*dynamodb.QueryOutput, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if i >= len(f.pages) {
		return nil, errors.New("unexpected page request")
	}
	out := &dynamodb.QueryOutput{Items: f.pages[i]}
	if i < len(f.pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"page": &types.AttributeValueMemberN{Value: "1"},
		}
	}
	return out, nil
}
