package view

// OrderRow is one line of the admin orders table.
type OrderRow struct {
	ID           string
	OrderID      string // short display label, e.g. "#4f2a1"
	Product      string
	Date         string
	CustomerName string
	Status       string
	Amount       string
	Cancellable  bool
}

// StatusCounts feeds the tab badges. Counts are over the unfiltered
// collection so the badges show totals, not the current filter view.
type StatusCounts struct {
	All        int
	Pending    int
	Processing int
	Shipped    int
	Delivered  int
	Cancelled  int
}

type OrdersPage struct {
	Rows      []OrderRow
	Counts    StatusCounts
	ActiveTab string
	Status    string
	From      string // yyyy-mm-dd
	To        string
	Total     int // unfiltered collection size
	LoadError string
}

type OrderDetailItem struct {
	ProductName string
	Quantity    int
	Price       string
	LineTotal   string
}

type OrderDetail struct {
	ID           string
	OrderID      string
	Status       string
	Date         string
	CustomerName string
	Phone        string
	Address      string
	Notes        string
	Items        []OrderDetailItem
	Total        string
	UpdateError  string
}
