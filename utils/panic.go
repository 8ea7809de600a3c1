package utils

import "github.com/vuuvv/vnmea/log"

func PanicIf(err error) {
	if err != nil {
		panic(err)
	}
}

func NormalRecover() {
	if r := recover(); r != nil {
		log.Error(r)
	}
}

// Catch logs a recovered panic and hands it to handler.
func Catch(handler func(reason any)) {
	if r := recover(); r != nil {
		log.Error(r)
		handler(r)
	}
}
