// Package creds stores the console admin credentials in the operating
// system keychain. The pair lives under a single service name as two
// items, "username" and "password", and never touches the config file,
// the log output, or the process environment. The pipeline reads the
// pair once per invocation, right before the login step.
package creds
