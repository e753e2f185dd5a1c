// Package customer implements the customer registration form: its fields and
// rules, live validation with per-session debouncing, drafts and storage of
// accepted customers.
//
// The form holds a first and last name, an email confirmed by a second
// input, a phone that becomes required once text notifications are chosen,
// a 1 to 5 rating, a catalog opt-in and any number of addresses.
//
// Mount the routes under a prefix of your choice:
//
//	svc := customer.NewService(customer.DefaultConfig(), translator, nil, nil,
//		customer.WithLogger(log),
//	)
//	defer svc.Close()
//	r.Mount("/customers", svc.Handle())
//
// Drafts and customers live in memory unless a RedisDraftStore or a
// PostgresRepository is passed in. Run Migrations with pg.Migrate before
// using the latter.
package customer
