package domain

// Identity es la identidad confiable derivada de un token verificado: {id, role}.
// Vale por la vida del token; un cambio de rol en DB no aplica hasta reemitirlo.
type Identity struct {
	ID   string
	Role string
}

// IsEmployer indica si la identidad puede publicar y administrar ofertas.
func (i Identity) IsEmployer() bool {
	return i.Role == "employer"
}
