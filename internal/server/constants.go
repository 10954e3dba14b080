package server

// AuthScheme is the Authorization header scheme prefix carrying Telegram
// Mini App init data.
const AuthScheme = "tma"
