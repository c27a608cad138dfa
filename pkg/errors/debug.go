package errors

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	MongoCode    int    `json:"mongo_code,omitempty"`
	MongoMessage string `json:"mongo_message,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) && len(writeErr.WriteErrors) > 0 {
		d.MongoCode = writeErr.WriteErrors[0].Code
		d.MongoMessage = writeErr.WriteErrors[0].Message
		return d
	}

	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) && len(bulkErr.WriteErrors) > 0 {
		d.MongoCode = bulkErr.WriteErrors[0].Code
		d.MongoMessage = bulkErr.WriteErrors[0].Message
	}

	return d
}
