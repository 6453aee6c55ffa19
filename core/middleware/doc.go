// Package middleware groups the HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: stamps every request with a unique id, stored in the context
//     and echoed in the response headers, so a scan can be traced from the
//     image upload through reconciliation to the persisted snapshot.
//   - auth: API key validation for the protected routes; health and
//     documentation stay public.
//
// Registration order matters: rayid runs before the logging and auth
// layers so both already see the id.
package middleware
