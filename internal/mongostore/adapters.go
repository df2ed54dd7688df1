package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerRead answers customer existence checks against the customers
// collection.
type CustomerRead struct {
	store *Store
}

func NewCustomerRead(store *Store) *CustomerRead {
	return &CustomerRead{store: store}
}

func (r *CustomerRead) Exists(ctx context.Context, customerID int64) (bool, error) {
	count, err := r.store.Customers().CountDocuments(ctx,
		bson.M{"customer_id": customerID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("checking customer existence: %w", err)
	}
	return count > 0, nil
}

// ProductRead resolves product ids to price snapshots with one $in query.
type ProductRead struct {
	store *Store
}

func NewProductRead(store *Store) *ProductRead {
	return &ProductRead{store: store}
}

func (r *ProductRead) ByIDs(ctx context.Context, productIDs []int64) ([]ports.ProductSnapshot, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.store.Products().Find(ctx,
		bson.M{"product_id": bson.M{"$in": productIDs}},
		options.Find().SetProjection(bson.M{"product_id": 1, "price": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching product snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	snapshots := make([]ports.ProductSnapshot, 0, len(productIDs))
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding product snapshot: %w", err)
		}
		price, err := moneyBack(doc.Price)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, ports.ProductSnapshot{ProductID: doc.ProductID, Price: price})
	}
	return snapshots, cursor.Err()
}

// OrderWrite persists an order aggregate as a single document with embedded
// items, assigning a sequential id from the counters collection when the
// order's id is unset.
type OrderWrite struct {
	store *Store
}

func NewOrderWrite(store *Store) *OrderWrite {
	return &OrderWrite{store: store}
}

func (w *OrderWrite) Create(ctx context.Context, order *domain.Order) (int64, error) {
	if order.OrderID == 0 {
		id, err := w.store.NextOrderID(ctx)
		if err != nil {
			return 0, err
		}
		order.OrderID = id
	}

	if _, err := w.store.Orders().InsertOne(ctx, orderToDoc(order)); err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}
	return order.OrderID, nil
}

// OrderRead composes the order-details read model from the orders,
// customers, and products collections. Missing referenced customers or
// products resolve to placeholders instead of failing.
type OrderRead struct {
	store *Store
}

func NewOrderRead(store *Store) *OrderRead {
	return &OrderRead{store: store}
}

func (r *OrderRead) DetailsByID(ctx context.Context, orderID int64) (*ports.OrderDetails, error) {
	var order orderDoc
	err := r.store.Orders().FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching order: %w", err)
	}

	total, err := moneyBack(order.TotalAmount)
	if err != nil {
		return nil, err
	}

	customer := ports.CustomerSummary{
		CustomerID: order.CustomerID,
		FirstName:  ports.Unknown,
		LastName:   ports.Unknown,
		Email:      ports.Unknown,
	}
	var customerD customerDoc
	err = r.store.Customers().FindOne(ctx, bson.M{"customer_id": order.CustomerID}).Decode(&customerD)
	if err == nil {
		customer = ports.CustomerSummary{
			CustomerID: customerD.CustomerID,
			FirstName:  customerD.FirstName,
			LastName:   customerD.LastName,
			Email:      customerD.Email,
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("fetching order customer: %w", err)
	}

	productIDs := make([]int64, 0, len(order.Items))
	seen := make(map[int64]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}
	}

	productByID := make(map[int64]productDoc, len(productIDs))
	if len(productIDs) > 0 {
		cursor, err := r.store.Products().Find(ctx,
			bson.M{"product_id": bson.M{"$in": productIDs}},
			options.Find().SetProjection(bson.M{"product_id": 1, "sku": 1, "name": 1}),
		)
		if err != nil {
			return nil, fmt.Errorf("fetching order products: %w", err)
		}
		defer cursor.Close(ctx)
		for cursor.Next(ctx) {
			var doc productDoc
			if err := cursor.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decoding order product: %w", err)
			}
			productByID[doc.ProductID] = doc
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
	}

	items := make([]ports.OrderItemDetails, 0, len(order.Items))
	for _, item := range order.Items {
		unitPrice, err := moneyBack(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		sku, name := ports.Unknown, ports.Unknown
		if p, ok := productByID[item.ProductID]; ok {
			sku, name = p.SKU, p.Name
		}
		items = append(items, ports.OrderItemDetails{
			ProductID: item.ProductID,
			SKU:       sku,
			Name:      name,
			Quantity:  int(item.Quantity),
			UnitPrice: unitPrice,
		})
	}

	return &ports.OrderDetails{
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		TotalAmount: total,
		CreatedAt:   order.CreatedAt,
		Customer:    customer,
		Items:       items,
	}, nil
}

// OrderHistoryRead reads paged order history with find + sort + skip/limit.
type OrderHistoryRead struct {
	store *Store
}

func NewOrderHistoryRead(store *Store) *OrderHistoryRead {
	return &OrderHistoryRead{store: store}
}

func (r *OrderHistoryRead) Page(ctx context.Context, customerID int64, pageNumber, pageSize int) (*ports.OrderHistoryPage, error) {
	skip := int64(pageNumber-1) * int64(pageSize)

	cursor, err := r.store.Orders().Find(ctx,
		bson.M{"customer_id": customerID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "order_id", Value: -1}}).
			SetSkip(skip).
			SetLimit(int64(pageSize)).
			SetProjection(bson.M{"order_id": 1, "created_at": 1, "status": 1, "total_amount": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching order history page: %w", err)
	}
	defer cursor.Close(ctx)

	page := &ports.OrderHistoryPage{
		CustomerID: customerID,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Orders:     make([]ports.OrderHistoryItem, 0, pageSize),
	}
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding order history item: %w", err)
		}
		total, err := moneyBack(doc.TotalAmount)
		if err != nil {
			return nil, err
		}
		page.Orders = append(page.Orders, ports.OrderHistoryItem{
			OrderID:     doc.OrderID,
			CreatedAt:   doc.CreatedAt,
			Status:      doc.Status,
			TotalAmount: total,
		})
	}
	return page, cursor.Err()
}

// TopProductsRead ranks products by units sold using an aggregation
// pipeline: match the time window, unwind the embedded items, group-sum per
// product, sort, limit, then look up SKU and name.
type TopProductsRead struct {
	store *Store
}

func NewTopProductsRead(store *Store) *TopProductsRead {
	return &TopProductsRead{store: store}
}

func (r *TopProductsRead) TopSelling(ctx context.Context, fromUTC, toUTC time.Time, limit int) (*ports.TopProductsResult, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: fromUTC}, {Key: "$lt", Value: toUTC}}},
		}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.product_id"},
			{Key: "quantity_sold", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quantity_sold", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "product_id"},
			{Key: "as", Value: "product"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "product_id", Value: "$_id"},
			{Key: "quantity_sold", Value: 1},
			{Key: "sku", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$product.sku", 0}}},
				ports.Unknown,
			}}}},
			{Key: "name", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$product.name", 0}}},
				ports.Unknown,
			}}}},
		}}},
	}

	cursor, err := r.store.Orders().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregating top products: %w", err)
	}
	defer cursor.Close(ctx)

	result := &ports.TopProductsResult{
		FromUTC: fromUTC,
		ToUTC:   toUTC,
		Limit:   limit,
		Items:   make([]ports.TopProductItem, 0, limit),
	}
	for cursor.Next(ctx) {
		var row struct {
			ProductID    int64  `bson:"product_id"`
			QuantitySold int64  `bson:"quantity_sold"`
			SKU          string `bson:"sku"`
			Name         string `bson:"name"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decoding top product: %w", err)
		}
		result.Items = append(result.Items, ports.TopProductItem{
			ProductID:    row.ProductID,
			SKU:          row.SKU,
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
		})
	}
	return result, cursor.Err()
}

func orderToDoc(order *domain.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDoc{
			ProductID: item.ProductID,
			Quantity:  int32(item.Quantity),
			UnitPrice: money(item.UnitPrice),
		})
	}
	return orderDoc{
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: money(order.TotalAmount),
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}
