package jobfeed

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

const (
	SearchPath = "/postings"
)

// SearchParams describes a feed query. Fields map to query parameters via the
// custom feedparam tag, falling back to the yaml tag.
type SearchParams struct {
	Text        string   `yaml:"text"`
	Departments []string `feedparam:"department"`
	Locations   []string `feedparam:"location"`
	OrderBy     string   `yaml:"order_by" mapstructure:"order_by"`
	PerPage     string   `yaml:"per_page" mapstructure:"per_page"`
	Period      uint     `yaml:"period"`
}

func (c *Client) search(params *SearchParams) (*Postings, error) {
	var postings []*Posting

	// Set per_page max as possible. It should be faster.
	if params.PerPage == "" {
		params.PerPage = perPage
	}

	q := buildParams(params)
	apiURLSearch := fmt.Sprintf("%s%s", c.APIURL, SearchPath)

	items, err := c.GetItems(apiURLSearch, q)
	if err != nil {
		return nil, err
	}

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &postings,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding feed items: %w", err)
	}

	return &Postings{
		Items: postings,
	}, nil
}

func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	fields := reflect.VisibleFields(reflect.TypeOf(*params))
	for _, field := range fields {
		key := field.Tag.Get("feedparam")
		if key == "" {
			// Failover to the yaml tag if the custom one is not set.
			key = field.Tag.Get("yaml")
		}
		kind := field.Type.Kind()
		switch kind {
		case reflect.Slice:
			s := reflect.ValueOf(params).Elem().Field(field.Index[0]).Interface()
			switch v := s.(type) {
			case []int:
				for _, value := range v {
					q.Add(key, strconv.Itoa(value))
				}

			case []string:
				for _, value := range v {
					q.Add(key, value)
				}
			}

		default:
			value := fmt.Sprintf("%v", reflect.ValueOf(params).Elem().Field(field.Index[0]).Interface())
			if value != "" && value != "0" {
				q.Set(key, value)
			}
		}
	}

	return q
}
