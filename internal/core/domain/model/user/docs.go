// Package user provides the User aggregate: an account with a role and an
// optional stored CV.
package user
