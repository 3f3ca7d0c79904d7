// Package user provides the User entity: an operator account with a role,
// a 3 character business code and an activation flag.
//
// Inactive users cannot act. Suppliers may only see their own profile.
package user
