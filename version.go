package latitude

// Version is the published SDK version.
const Version = "0.2.0"

// userAgent identifies this SDK on every request to the gateway.
const userAgent = "latitude-go/" + Version
