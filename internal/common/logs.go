package common

var noopServiceLog chan ServiceLog

func init() {
	noopServiceLog = make(chan ServiceLog, 64)
	go drainNoopServiceLog()
}

// GetNoopServiceLog returns a shared channel whose entries are read
// and discarded; components constructed without a real log channel
// use it so their sends never block
func GetNoopServiceLog() chan ServiceLog {
	return noopServiceLog
}

func drainNoopServiceLog() {
	for {
		if _, ok := <-noopServiceLog; !ok {
			return
		}
	}
}

func StopNoopServiceLog() {
	close(noopServiceLog)
}
