package utils

import (
	"context"
)

type contextKey string

const (
	CustomerNameKey  contextKey = "customer_name"
	CustomerEmailKey contextKey = "customer_email"
	RequestIDKey     contextKey = "request_id"
)

// CustomerIdentity is what the account service vouches for in a bearer token.
type CustomerIdentity struct {
	Name  string
	Email string
}

func SetCustomerContext(ctx context.Context, identity CustomerIdentity) context.Context {
	ctx = context.WithValue(ctx, CustomerNameKey, identity.Name)
	ctx = context.WithValue(ctx, CustomerEmailKey, identity.Email)
	return ctx
}

func GetCustomerFromContext(ctx context.Context) (CustomerIdentity, bool) {
	email, ok := ctx.Value(CustomerEmailKey).(string)
	if !ok || email == "" {
		return CustomerIdentity{}, false
	}

	name, _ := ctx.Value(CustomerNameKey).(string)
	return CustomerIdentity{Name: name, Email: email}, true
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok && requestID != ""
}
