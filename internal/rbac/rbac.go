package rbac

import (
	"slices"
)

// Permission представляет разрешение в системе
type Permission string

const (
	// Клиентские разрешения
	PermissionOrderPlace        Permission = "order:place"
	PermissionSubscriptionView  Permission = "subscription:view"
	PermissionSubscriptionPause Permission = "subscription:pause"
	PermissionSubscriptionEnd   Permission = "subscription:cancel"

	// Доставка
	PermissionDeliveryFulfill Permission = "delivery:fulfill"

	// Административные разрешения
	PermissionPricingOverride      Permission = "pricing:override"
	PermissionSubscriptionManage   Permission = "subscription:manage_any"
	PermissionSubscriptionExpire   Permission = "subscription:expire"
	PermissionSubscriptionAuditLog Permission = "subscription:audit_log"
)

// Role представляет роль в системе
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCourier  Role = "courier"
	RoleCustomer Role = "customer"
)

// RBAC управляет ролями и разрешениями
type RBAC struct {
	rolePermissions map[Role][]Permission
}

// NewRBAC создает новый RBAC менеджер
func NewRBAC() *RBAC {
	rbac := &RBAC{
		rolePermissions: make(map[Role][]Permission),
	}

	rbac.initializeRolePermissions()

	return rbac
}

func (r *RBAC) initializeRolePermissions() {
	customer := []Permission{
		PermissionOrderPlace,
		PermissionSubscriptionView,
		PermissionSubscriptionPause,
		PermissionSubscriptionEnd,
	}

	// Admin - все разрешения
	r.rolePermissions[RoleAdmin] = append(slices.Clone(customer),
		PermissionDeliveryFulfill,
		PermissionPricingOverride,
		PermissionSubscriptionManage,
		PermissionSubscriptionExpire,
		PermissionSubscriptionAuditLog,
	)

	// Courier - только отметка доставок
	r.rolePermissions[RoleCourier] = []Permission{
		PermissionDeliveryFulfill,
	}

	// Customer - свои заказы и подписки
	r.rolePermissions[RoleCustomer] = customer
}

// CheckPermissionWithRole проверяет разрешение для указанной роли
func (r *RBAC) CheckPermissionWithRole(role Role, permission Permission) bool {
	permissions, exists := r.rolePermissions[role]
	if !exists {
		return false
	}
	return slices.Contains(permissions, permission)
}

// IsValidRole проверяет, является ли роль валидной
func (r *RBAC) IsValidRole(role Role) bool {
	_, exists := r.rolePermissions[role]
	return exists
}
