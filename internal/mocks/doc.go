// Package mocks provides testify mocks of the store interfaces and of the
// service facade.
//
// Store mocks are rebound to a transaction by returning themselves from
// WithTx, so a test sets expectations once and they apply inside and outside
// facade transactions alike. Update runs the mutate function against a copy
// of the entity returned by the expectation, which lets tests exercise the
// authorization and validation logic callers put in that function.
//
//	users := &mocks.UserStore{}
//	users.On("Get", mock.Anything, id).Return(user, nil)
//	users.On("Update", mock.Anything, id).Return(user, nil)
package mocks
