package feed

import "go.uber.org/fx"

// Module provides the snapshot hub. The refresher is constructed by the app
// module so its lifecycle sits with the other runtime components.
var Module = fx.Provide(NewHub)
