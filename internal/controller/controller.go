package controller

import (
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoReturnAfter FindOneAndUpdate'in güncellenmiş dokümanı dönmesi için
func mongoReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
