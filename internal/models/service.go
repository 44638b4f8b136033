package models

import (
	"strings"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/typemap"
	"github.com/toyz/proxygen/internal/urltemplate"
	"github.com/toyz/proxygen/internal/utils"
)

// DefaultRequestType is used when an action has no body-bound parameter.
const DefaultRequestType = "any"

// Signature is the client-side method declaration.
type Signature struct {
	Name       string      `json:"name"`
	Parameters []*Property `json:"parameters"`
	ReturnType string      `json:"returnType"`
}

// QueryParam is a single entry of the query parameters object.
type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Expression renders the entry, using shorthand when key and value match.
func (q QueryParam) Expression() string {
	if q.Key == q.Value {
		return q.Key
	}
	return q.Key + ": " + q.Value
}

// Body is the transport call issued by a generated method.
type Body struct {
	Method       string       `json:"method"`
	URL          string       `json:"url"`
	Params       []QueryParam `json:"params"`
	Body         string       `json:"body,omitempty"`
	RequestType  string       `json:"requestType"`
	ResponseType string       `json:"responseType"`

	action    string
	bodyParam string
	template  *urltemplate.Template
}

// NewBody creates the body of action issuing method on url.
func NewBody(action, method, url, responseType string) (*Body, error) {
	tmpl, err := urltemplate.Parse(url)
	if err != nil {
		return nil, errors.InvalidURLTemplate(url, err)
	}
	return &Body{
		Method:       method,
		URL:          url,
		Params:       make([]QueryParam, 0),
		RequestType:  DefaultRequestType,
		ResponseType: responseType,
		action:       action,
		template:     tmpl,
	}, nil
}

// RegisterActionParameter wires one HTTP parameter into the body according
// to its binding source. Path parameters rewrite the URL template, query and
// model-bound parameters become query entries and a body-bound parameter
// fills the request body slot. Other binding sources are ignored.
func (b *Body) RegisterActionParameter(param ParameterDefinition) error {
	value := param.NameOnMethod
	if param.DescriptorName != "" {
		value = param.DescriptorName + "." + utils.CamelCase(param.Name)
	}

	switch param.BindingSourceID {
	case BindingSourcePath:
		b.template.Interpolate(param.Name, value)
		b.URL = b.template.String()
	case BindingSourceQuery, BindingSourceModel:
		key := param.JSONName
		if key == "" {
			key = utils.CamelCase(param.Name)
		}
		b.Params = append(b.Params, QueryParam{Key: utils.QuoteIfNeeded(key), Value: value})
	case BindingSourceBody:
		if b.bodyParam != "" {
			return errors.MultipleBodyParameters(b.action, b.bodyParam, param.Name)
		}
		b.bodyParam = param.Name
		b.Body = value
		if param.TypeSimple != "" {
			b.RequestType = typemap.AdaptAnnotation(param.TypeSimple)
		}
	}
	return nil
}

// URLExpression renders the URL as a client string expression: a template
// literal when it carries interpolations, a quoted string otherwise. The
// path always starts with "/".
func (b *Body) URLExpression() string {
	url := b.URL
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	if urltemplate.IsInterpolated(url) {
		return "`" + url + "`"
	}
	return "'" + url + "'"
}

// Method is a generated service method.
type Method struct {
	Signature *Signature `json:"signature"`
	Body      *Body      `json:"body"`
}

// Service is the generated client of one backend controller.
type Service struct {
	Namespace string    `json:"namespace"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	APIName   string    `json:"apiName"`
	Imports   []*Import `json:"imports"`
	Methods   []*Method `json:"methods"`
}
