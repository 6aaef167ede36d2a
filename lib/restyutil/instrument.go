package restyutil

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type InstrumentOutput interface {
	Write(id string, contents string)
}

type instrumentCtx struct {
	name      string
	output    InstrumentOutput
	idcounter *uint64
}

// InstrumentClient dumps every exchange made by the client into output,
// one entry per request named `<name>-<n>-<method>`. A nil output makes
// this a no-op.
func InstrumentClient(client *resty.Client, name string, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	i := instrumentCtx{name: name, output: output, idcounter: &idcounter}
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrumentCtx) nextId(method string) string {
	n := atomic.AddUint64(i.idcounter, 1)
	return fmt.Sprintf("%s-%03d-%s", i.name, n, strings.ToLower(method))
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	id := i.nextId(res.Request.Method)
	i.output.Write(id, formatHttpMessage(res))
	slog.Debug(
		"http exchange recorded",
		"id", id,
		"url", res.Request.URL,
		"status", res.StatusCode(),
	)
	return nil
}

func (i instrumentCtx) onError(req *resty.Request, err error) {
	id := i.nextId(req.Method)
	i.output.Write(id, formatHttpRequest(req)+"\n\n---- ERROR ----\n\n"+err.Error())
}
