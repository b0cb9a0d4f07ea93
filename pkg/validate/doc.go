// Package validate provides rule-based input validation for request
// payloads before they reach the network.
//
//	err := validate.Apply(
//		validate.Required("username", username),
//		validate.Email("email", email),
//		validate.MinLen("password", password, 6),
//	)
//
// Apply runs every rule and reports all failures at once as FieldErrors,
// so a form can surface per-field messages in a single pass.
package validate
