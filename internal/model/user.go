package model

// User identifies the single client this storefront serves. There is no
// authentication; the default user stands in for a signed-in customer.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// DefaultUser is the stand-in customer attached to orders.
var DefaultUser = User{
	ID:     "1",
	Name:   "John Doe",
	Email:  "john@example.com",
	Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=100",
}

// DefaultShippingAddress is used when the caller places an order without
// supplying an address.
var DefaultShippingAddress = ShippingAddress{
	Street:  "123 Main St",
	City:    "New York",
	State:   "NY",
	ZipCode: "10001",
	Country: "USA",
}
