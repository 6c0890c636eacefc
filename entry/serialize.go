package entry

import (
	"bytes"
	"sync"
	"time"
)

// bufferPool reuses serialization buffers: serialization happens on the
// dispatch hot path and a reused buffer keeps it allocation-light.
var bufferPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	b := bufferPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func putBuffer(b *bytes.Buffer) {
	if b.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(b)
}

// timeLayout is RFC 5424's full-date/full-time with microsecond precision.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Defaults bundles the per-target fallback values Dispatch snapshots under
// the target lock before releasing it.
type Defaults struct {
	Prival     int
	AppName    string
	MsgID      string
	IncludePID bool
}

// Serialize renders e as RFC 5424 text, applying d for any header field e
// leaves unset, and returns a caller-owned byte slice.
//
// The returned timestamp is captured here, after the caller has already
// snapshotted target defaults and released the lock.
func Serialize(e *Entry, d Defaults, hostname string, pid int) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	prival := d.Prival
	if e.Facility != nil || e.Severity != nil {
		fac, sev := SplitPrival(prival)
		if e.Facility != nil {
			fac = *e.Facility
		}
		if e.Severity != nil {
			sev = *e.Severity
		}
		prival = Prival(fac, sev)
	}

	appName := d.AppName
	if e.AppName != "" {
		appName = e.AppName
	}
	msgID := d.MsgID
	if e.MsgID != "" {
		msgID = e.MsgID
	}
	host := hostname
	if e.Hostname != "" {
		host = e.Hostname
	}
	procID := NilValue
	if e.ProcID != "" {
		procID = e.ProcID
	}

	buf.WriteByte('<')
	buf.WriteString(itoa(prival))
	buf.WriteString(">1 ")
	buf.Write(time.Now().UTC().AppendFormat(buf.AvailableBuffer(), timeLayout))
	buf.WriteByte(' ')
	writeNilable(buf, host)
	buf.WriteByte(' ')
	writeNilable(buf, appName)
	buf.WriteByte(' ')
	writeNilable(buf, procID)
	buf.WriteByte(' ')
	writeNilable(buf, msgID)
	buf.WriteByte(' ')

	writeStructuredData(buf, e.StructuredData, d.IncludePID, pid)

	if e.Message != "" {
		buf.WriteByte(' ')
		buf.WriteString(e.Message)
	}
	buf.WriteByte('\n')

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func writeNilable(buf *bytes.Buffer, s string) {
	if s == "" {
		buf.WriteString(NilValue)
		return
	}
	buf.WriteString(s)
}

func writeStructuredData(buf *bytes.Buffer, elements []Element, includePID bool, pid int) {
	if includePID {
		elements = append(append([]Element{}, elements...), pidElement(pid))
	}
	if len(elements) == 0 {
		buf.WriteString(NilValue)
		return
	}
	for _, el := range elements {
		buf.WriteByte('[')
		buf.WriteString(el.ID)
		for _, p := range el.Params {
			buf.WriteByte(' ')
			buf.WriteString(p.Name)
			buf.WriteString(`="`)
			buf.WriteString(escapeParamValue(p.Value))
			buf.WriteByte('"')
		}
		buf.WriteByte(']')
	}
}
