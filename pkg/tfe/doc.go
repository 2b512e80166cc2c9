// Package tfe provides the public API surface for the Terraform Enterprise /
// HCP Terraform client: the Client interface, configuration, JSON:API envelope
// types, the error taxonomy, query building, pagination helpers, interceptors,
// and the optional response cache.
//
// Create a client with the tfeclient package:
//
//	client, err := tfeclient.New(ctx, &tfe.Config{
//	    Address: "https://app.terraform.io",
//	    Token:   os.Getenv("TFE_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	workspaces, err := client.Workspaces().List(ctx, "my-org", nil)
//
// List operations return a single Page. To walk every page lazily, wrap the
// list call in a pagination iterator:
//
//	it := tfe.NewPaginationIterator(ctx, func(ctx context.Context, opts *tfe.ListOptions) (*tfe.Page[tfe.Workspace], error) {
//	    return client.Workspaces().List(ctx, "my-org", opts)
//	}, nil)
//	for it.HasNext() {
//	    ws, err := it.Next()
//	    ...
//	}
//
// Errors returned by the client are classified: use predicates such as
// IsNotFound, IsUnauthorized, IsRateLimited, and IsValidation to branch on the
// failure kind without string matching.
package tfe
