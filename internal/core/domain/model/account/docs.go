// Package account contains the Account aggregate and the Role value object.
// An account is an administrator, a driver, or a goods owner; drivers and
// goods owners carry role-specific profile data. The package also defines
// Actor, the already-authenticated caller identity (id + role) that every
// use case receives from the transport layer.
package account
