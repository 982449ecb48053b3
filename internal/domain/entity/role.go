package entity

import "fmt"

// Role represents a user role in the system
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleDoctor        Role = "doctor"
	RolePatient       Role = "patient"
	RoleReceptionist  Role = "receptionist"
	RolePharmacist    Role = "pharmacist"
	RoleLabTechnician Role = "lab_technician"
	RoleAccountant    Role = "accountant"
)

var allRoles = []Role{
	RoleAdmin,
	RoleDoctor,
	RolePatient,
	RoleReceptionist,
	RolePharmacist,
	RoleLabTechnician,
	RoleAccountant,
}

// ParseRole converts a raw string into a Role, rejecting unrecognized values.
func ParseRole(s string) (Role, error) {
	for _, r := range allRoles {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsValid reports whether the role is one of the closed set.
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
