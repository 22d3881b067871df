package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booze/internal/domain/entities"
	"booze/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName        = "orders"
	defaultOrderProductsTableName = "order_products"
	ordersCustomerIDIndex         = "customer_id-index"

	// DynamoDB caps a transaction at 100 actions: one order header plus its lines.
	maxLinesPerOrder = 99
)

var ErrTooManyOrderLines = fmt.Errorf("order exceeds %d lines", maxLinesPerOrder)

type addressAttr struct {
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood,omitempty"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	ZipCode      string `dynamodbav:"zip_code"`
}

type orderItem struct {
	ID          string      `dynamodbav:"id"`
	CustomerID  string      `dynamodbav:"customer_id"`
	PaymentMode string      `dynamodbav:"payment_mode"`
	PriceAmount int64       `dynamodbav:"price_amount"`
	Address     addressAttr `dynamodbav:"address"`
	CreatedAt   string      `dynamodbav:"created_at"`
}

type orderProductItem struct {
	OrderID        string `dynamodbav:"order_id"`
	Line           int    `dynamodbav:"line"`
	CustomerID     string `dynamodbav:"customer_id"`
	ProductID      string `dynamodbav:"product_id"`
	Quantity       int    `dynamodbav:"quantity"`
	UnitPriceCents int64  `dynamodbav:"unit_price"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists orders and serves order history from DynamoDB.
//
// Table requirements:
//   - orders: PK id (string); GSI customer_id-index (PK customer_id, SK created_at)
//   - order_products: PK order_id (string), SK line (number); GSI customer_id-index (PK customer_id)
//
// An order and its lines are written in one transaction guarded by
// attribute_not_exists(id), so writing the same order twice stores it once.

type OrderDynamoRepository struct {
	ddb                DynamoAPI
	ordersTable        string
	orderProductsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:                ddb,
		ordersTable:        getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		orderProductsTable: getenvDefault("ORDER_PRODUCTS_TABLE", defaultOrderProductsTableName),
	}
}

func (r *OrderDynamoRepository) Persist(ctx context.Context, o entities.Order) error {
	if len(o.LineItems) > maxLinesPerOrder {
		return ErrTooManyOrderLines
	}

	header, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}

	actions := make([]types.TransactWriteItem, 0, len(o.LineItems)+1)
	actions = append(actions, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.ordersTable),
			Item:                header,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for i, li := range o.LineItems {
		av, err := attributevalue.MarshalMap(toOrderProductItem(o, i, li))
		if err != nil {
			return err
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.orderProductsTable),
				Item:      av,
			},
		})
	}

	// No ClientRequestToken: a retry rebuilds the order with a new created_at,
	// which DynamoDB would reject as a token mismatch. The conditional put on the
	// header already makes a repeated write of the same order id a no-op.
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: actions})
	if err != nil {
		if isOrderAlreadyStored(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) ListSummariesByCustomer(ctx context.Context, customerID string) ([]entities.OrderSummary, error) {
	raws, err := r.queryByCustomer(ctx, r.ordersTable, customerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]entities.OrderSummary, 0, len(raws))
	for _, raw := range raws {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		summaries = append(summaries, fromOrderItem(it))
	}
	return summaries, nil
}

func (r *OrderDynamoRepository) ListLineRecordsByCustomer(ctx context.Context, customerID string) ([]entities.OrderLineRecord, error) {
	raws, err := r.queryByCustomer(ctx, r.orderProductsTable, customerID)
	if err != nil {
		return nil, err
	}

	records := make([]entities.OrderLineRecord, 0, len(raws))
	for _, raw := range raws {
		var it orderProductItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, entities.OrderLineRecord{
			ProductID: it.ProductID,
			OrderID:   it.OrderID,
			Quantity:  it.Quantity,
		})
	}
	return records, nil
}

func (r *OrderDynamoRepository) queryByCustomer(ctx context.Context, table, customerID string) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(ordersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})

	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// isOrderAlreadyStored reports whether the transaction was cancelled only
// because the order header already exists.
func isOrderAlreadyStored(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || len(tce.CancellationReasons) == 0 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed"
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		PaymentMode: string(o.PaymentMode),
		PriceAmount: o.TotalAmountCents,
		Address: addressAttr{
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Complement:   o.Address.Complement,
			Neighborhood: o.Address.Neighborhood,
			City:         o.Address.City,
			State:        o.Address.State,
			ZipCode:      o.Address.ZipCode,
		},
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toOrderProductItem(o entities.Order, line int, li entities.LineItem) orderProductItem {
	return orderProductItem{
		OrderID:        o.ID,
		Line:           line,
		CustomerID:     o.CustomerID,
		ProductID:      li.ProductID,
		Quantity:       li.Quantity,
		UnitPriceCents: li.UnitPriceCents,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.OrderSummary {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OrderSummary{
		OrderID:          it.ID,
		CustomerID:       it.CustomerID,
		PaymentMode:      entities.PaymentMode(it.PaymentMode),
		TotalAmountCents: it.PriceAmount,
		CreatedAt:        createdAt,
	}
}
