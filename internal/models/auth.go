package models

// User is a signed-in brand account. The name doubles as the tenant
// identity used to scope deadline visibility.
type User struct {
	Name string `json:"name"`
}
