package entity

// Store representa una sucursal. El flujo de pedidos solo la referencia, nunca la modifica.
type Store struct {
	StoreID     int
	Address     string
	City        string
	State       string
	IsOpen      string
	ReviewScore string
}
