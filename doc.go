// Package latitude provides a client for the Latitude prompt-execution API,
// allowing applications to run documents (prompts) hosted on the Latitude
// gateway and to consume the results either as a single buffered response or
// as a real-time stream of server-sent events.
//
// A Client is created with an API key and optional defaults for the project
// and version the documents live in:
//
//	client := latitude.New("your-api-key",
//		latitude.WithProjectID(123),
//		latitude.WithVersionUUID("version-uuid"),
//	)
//
// Documents are executed through Run for a buffered JSON response, or
// RunStream for an event stream:
//
//	resp, err := client.Run(ctx, latitude.RunDocument{
//		Path:       "workers/emotion-analyzer",
//		Parameters: map[string]any{"user_message": "Hello, world!"},
//	})
//
//	events, err := client.RunStream(ctx, latitude.RunDocument{Path: "joker"})
//	if err != nil {
//		return err
//	}
//	for event := range events {
//		switch ev := event.(type) {
//		case latitude.TextDeltaEvent:
//			fmt.Print(ev.TextDelta)
//		case latitude.ChainCompleteEvent:
//			fmt.Println(ev.Response.Text)
//		}
//	}
//
// Finished conversations can be continued with Chat and ChatStream, evaluated
// with Evaluate, and externally produced generations can be pushed into
// Latitude's logs with CreateLog.
package latitude
