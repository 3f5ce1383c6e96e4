package mock

//go:generate go install github.com/golang/mock/mockgen@v1.6.0
//go:generate mockgen -package mock -destination ./storage.mock.go github.com/provenid/oplogout/pkg/op Storage
//go:generate mockgen -package mock -destination ./client.mock.go github.com/provenid/oplogout/pkg/op Client
