// Package tfeclient provides the primary entry point for constructing a
// Terraform Enterprise API client that implements the tfe.Client interface.
//
// It layers configuration, the retrying HTTP transport, and the optional
// response cache on top of the resource interfaces and types defined in the
// tfe package. Most applications should import tfeclient to build a client,
// then use the returned tfe.Client to access resource-specific clients, for
// example Workspaces(), Runs(), Variables(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ibm-richard/go-tfe/pkg/tfe"
//	  "github.com/ibm-richard/go-tfe/pkg/tfeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: address and token.
//	  cli, err := tfeclient.New(&tfe.Config{
//	    Address: "https://tfe.example.com",
//	    Token:   "my-api-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from the environment: TFE_ADDRESS (or TFE_HOST) and TFE_TOKEN.
//	  // The address defaults to https://app.terraform.io when unset.
//	  cli, err = tfeclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  workspaces, err := cli.Workspaces().List(ctx, "my-org", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = workspaces
//	}
//
// The address may omit the scheme; "tfe.example.com" becomes
// "https://tfe.example.com". A trailing slash is trimmed.
package tfeclient
