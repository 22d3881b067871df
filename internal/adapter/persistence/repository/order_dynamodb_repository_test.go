package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"booze/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleOrder() entities.Order {
	return entities.Order{
		ID:         "3b0d3c1e-4a55-4f7a-9d55-2c1f8a0e9b11",
		CustomerID: "cust-1",
		Address:    entities.Address{Street: "Rua A", Number: "1", City: "Sao Paulo", State: "SP", ZipCode: "01000-000"},
		LineItems: []entities.LineItem{
			{ProductID: "p1", Quantity: 2, UnitPriceCents: 1000},
			{ProductID: "p2", Quantity: 1, UnitPriceCents: 500},
		},
		PaymentMode:      entities.PaymentModePix,
		TotalAmountCents: 2800,
		CreatedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderDynamoRepository_Persist(t *testing.T) {
	t.Run("writes header and lines in one transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewOrderDynamoRepository(fake)

		if err := repo.Persist(context.Background(), sampleOrder()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.transacts) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(fake.transacts))
		}
		in := fake.transacts[0]
		if len(in.TransactItems) != 3 {
			t.Fatalf("expected 3 actions, got %d", len(in.TransactItems))
		}
		if in.ClientRequestToken != nil {
			t.Fatalf("expected no request token, got %q", aws.ToString(in.ClientRequestToken))
		}

		header := in.TransactItems[0].Put
		if aws.ToString(header.TableName) != "orders" || aws.ToString(header.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected header put: %+v", header)
		}
		if v := header.Item["price_amount"].(*types.AttributeValueMemberN).Value; v != "2800" {
			t.Fatalf("expected price_amount 2800, got %s", v)
		}
		if v := header.Item["payment_mode"].(*types.AttributeValueMemberS).Value; v != "pix" {
			t.Fatalf("expected pix, got %s", v)
		}

		line := in.TransactItems[2].Put
		if aws.ToString(line.TableName) != "order_products" {
			t.Fatalf("unexpected line table: %s", aws.ToString(line.TableName))
		}
		if v := line.Item["product_id"].(*types.AttributeValueMemberS).Value; v != "p2" {
			t.Fatalf("expected p2, got %s", v)
		}
		if v := line.Item["line"].(*types.AttributeValueMemberN).Value; v != "1" {
			t.Fatalf("expected line 1, got %s", v)
		}
	})

	t.Run("already stored order counts as success", func(t *testing.T) {
		fake := &fakeDynamo{writeErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		}}
		repo := NewOrderDynamoRepository(fake)
		if err := repo.Persist(context.Background(), sampleOrder()); err != nil {
			t.Fatalf("expected nil for duplicate write, got %v", err)
		}
	})

	t.Run("retry of a landed write with a new created_at succeeds", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewOrderDynamoRepository(fake)

		first := sampleOrder()
		if err := repo.Persist(context.Background(), first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		retry := sampleOrder()
		retry.CreatedAt = first.CreatedAt.Add(3 * time.Second)
		if err := repo.Persist(context.Background(), retry); err != nil {
			t.Fatalf("expected retry to count as stored, got %v", err)
		}
		if len(fake.transacts) != 2 || len(fake.orders) != 1 {
			t.Fatalf("expected two attempts and one stored order, got %d attempts %d orders", len(fake.transacts), len(fake.orders))
		}
	})

	t.Run("other failures surface", func(t *testing.T) {
		fake := &fakeDynamo{writeErr: errors.New("throttled")}
		repo := NewOrderDynamoRepository(fake)
		if err := repo.Persist(context.Background(), sampleOrder()); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})

	t.Run("too many lines", func(t *testing.T) {
		o := sampleOrder()
		o.LineItems = make([]entities.LineItem, maxLinesPerOrder+1)
		repo := NewOrderDynamoRepository(&fakeDynamo{})
		if err := repo.Persist(context.Background(), o); !errors.Is(err, ErrTooManyOrderLines) {
			t.Fatalf("expected ErrTooManyOrderLines, got %v", err)
		}
	})
}

func TestOrderDynamoRepository_ListSummariesByCustomer(t *testing.T) {
	fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{
		{
			"id":           &types.AttributeValueMemberS{Value: "o1"},
			"customer_id":  &types.AttributeValueMemberS{Value: "cust-1"},
			"payment_mode": &types.AttributeValueMemberS{Value: "debito"},
			"price_amount": &types.AttributeValueMemberN{Value: "1300"},
			"created_at":   &types.AttributeValueMemberS{Value: "2026-03-01T12:00:00Z"},
		},
	}}}
	repo := NewOrderDynamoRepository(fake)

	got, err := repo.ListSummariesByCustomer(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].OrderID != "o1" || got[0].PaymentMode != entities.PaymentModeDebito || got[0].TotalAmountCents != 1300 {
		t.Fatalf("unexpected summaries: %+v", got)
	}
	if !got[0].CreatedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected created_at: %v", got[0].CreatedAt)
	}
	q := fake.queries[0]
	if aws.ToString(q.IndexName) != "customer_id-index" || aws.ToString(q.TableName) != "orders" {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestOrderDynamoRepository_ListLineRecordsByCustomer(t *testing.T) {
	rec := func(order, product string) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			"order_id":    &types.AttributeValueMemberS{Value: order},
			"product_id":  &types.AttributeValueMemberS{Value: product},
			"customer_id": &types.AttributeValueMemberS{Value: "cust-1"},
			"quantity":    &types.AttributeValueMemberN{Value: "1"},
			"line":        &types.AttributeValueMemberN{Value: "0"},
		}
	}
	fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
		{rec("o1", "A"), rec("o2", "C")},
		{rec("o1", "B")},
	}}
	repo := NewOrderDynamoRepository(fake)

	got, err := repo.ListLineRecordsByCustomer(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ProductID != "A" || got[1].OrderID != "o2" || got[2].ProductID != "B" {
		t.Fatalf("unexpected records: %+v", got)
	}
	if aws.ToString(fake.queries[0].TableName) != "order_products" {
		t.Fatalf("unexpected table: %s", aws.ToString(fake.queries[0].TableName))
	}

	failing := NewOrderDynamoRepository(&fakeDynamo{pageErr: errors.New("db")})
	if _, err := failing.ListLineRecordsByCustomer(context.Background(), "cust-1"); err == nil {
		t.Fatalf("expected error")
	}
}
