// Package authz decide qué rol puede ejecutar qué acción. No depende de HTTP: la misma
// función la usan el middleware de rutas y los casos de uso.
package authz

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// Action operación sobre un recurso.
type Action string

const (
	ReadAccount   Action = "read-account"
	CreateAccount Action = "create-account"
	UpdateAccount Action = "update-account"
	DeleteAccount Action = "delete-account"

	ReadItem   Action = "read-item"
	CreateItem Action = "create-item"
	UpdateItem Action = "update-item"
	DeleteItem Action = "delete-item"
)

// mutating acciones que modifican estado; solo admin.
var mutating = map[Action]struct{}{
	CreateAccount: {},
	UpdateAccount: {},
	DeleteAccount: {},
	CreateItem:    {},
	UpdateItem:    {},
	DeleteItem:    {},
}

var reading = map[Action]struct{}{
	ReadAccount: {},
	ReadItem:    {},
}

// Actions todas las acciones conocidas.
func Actions() []Action {
	return []Action{
		ReadAccount, CreateAccount, UpdateAccount, DeleteAccount,
		ReadItem, CreateItem, UpdateItem, DeleteItem,
	}
}

// IsMutating indica si la acción modifica estado.
func IsMutating(a Action) bool {
	_, ok := mutating[a]
	return ok
}

// CanPerform devuelve true si role puede ejecutar action. Rol o acción desconocidos: false.
func CanPerform(role entity.Role, action Action) bool {
	if !role.Valid() {
		return false
	}
	if _, ok := reading[action]; ok {
		return true
	}
	if _, ok := mutating[action]; ok {
		return role == entity.RoleAdmin
	}
	return false
}
