package common

// AccessTokenHeaderName is the gRPC metadata key (and WebSocket handshake
// header) used to carry the access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AwardServiceName is the fully qualified gRPC service of the award backend.
const AwardServiceName = "awards.v1.AwardService"
