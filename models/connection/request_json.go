package connection

type ReqSelectShip struct {
	ShipIndex int `json:"ship_index"`
}

type ReqPlaceShip struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ReqAttack struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
