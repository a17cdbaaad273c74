package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "nestd://docs/lifecycle",
		Name:        "lifecycle",
		Title:       "Pet lifecycle",
		Description: "How pets grow and what the shell should render",
		Content: `# Pet lifecycle

A pet moves through four stages, forward only:

    egg -> hatchling -> juvenile -> adult

Growth is driven purely by accumulated elapsed time while nestd runs.
Each stage has an age threshold (configurable via nestd's growth
config); adult is terminal. The shell should map each stage to its
sprite and may show the ` + "`next_stage_in`" + ` countdown from get_pet.

## Rendering guidance

- Poll get_nest on your animation or redraw timer; it is a cheap
  in-memory read.
- Stages never regress. If you see a lower stage than last frame you
  are looking at a different pet or a reset.
- ` + "`next_stage_in`" + ` is absent for adults; hide the countdown.

## Dev affordances

fast_forward and reset_pet exist so you can exercise every sprite
without waiting hours. Neither touches the wall clock; both go through
the same growth engine as the tick loop.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
