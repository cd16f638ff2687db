package entity

import "time"

// CartItem une un comprador con un producto. Invariante: a lo sumo un CartItem por
// par (BuyerID, ProductID). Nunca se actualiza en el sitio: para cambiar la cantidad
// el comprador borra el item y lo vuelve a agregar.
type CartItem struct {
	ID              string
	BuyerID         string
	ProductID       string
	OrderedQuantity int // >= 1, acotado por el stock del producto al momento del alta
	CreatedAt       time.Time
}

// CartDetail es la vista de lectura de un item del carrito: el item junto con una
// instantánea de su producto tomada al momento de la consulta, no del alta. Precio y
// stock mostrados pueden diferir de los vigentes cuando el item se agregó.
type CartDetail struct {
	ID              string
	OrderedQuantity int
	Product         ProductSnapshot
}
