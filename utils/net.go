package utils

import (
	stderrors "errors"
	"net"
	"time"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vnmea/log"
	"go.uber.org/zap"
)

const DefaultKeepAlivePeriod = 3 * time.Minute

func SafeCloseConn(conn net.Conn) {
	if conn == nil {
		return
	}
	addr := ""
	if ra := conn.RemoteAddr(); ra != nil {
		addr = ra.String()
	}
	log.Debug("Closing connection", zap.String("addr", addr))
	if err := conn.Close(); err != nil && !IsClosedConnError(err) {
		log.Warn(errors.Wrap(err, "close connection"), zap.String("addr", addr))
	}
}

// IsClosedConnError reports errors caused by using an already closed
// connection or listener.
func IsClosedConnError(err error) bool {
	return stderrors.Is(err, net.ErrClosed)
}

// OptimalTcpConn enables keep-alive and disables Nagle for low-latency
// sentence delivery. Zero buffer sizes keep the kernel defaults.
func OptimalTcpConn(conn net.Conn, readBufferSize, writeBufferSize int) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return errors.New("not a tcp connection")
	}

	// 防止对端异常断开但本端不知情
	if err := tcpConn.SetKeepAlive(true); err != nil {
		return errors.WithStack(err)
	}
	if err := tcpConn.SetKeepAlivePeriod(DefaultKeepAlivePeriod); err != nil {
		return errors.WithStack(err)
	}

	// 语句很短, 立即发送
	if err := tcpConn.SetNoDelay(true); err != nil {
		return errors.WithStack(err)
	}

	if readBufferSize > 0 {
		if err := tcpConn.SetReadBuffer(readBufferSize); err != nil {
			return errors.WithStack(err)
		}
	}
	if writeBufferSize > 0 {
		if err := tcpConn.SetWriteBuffer(writeBufferSize); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
