package entity

// Session es el registro guardado en el session store bajo el token.
// No tiene estado "expirado": la ausencia de la clave en el store es la expiración.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
