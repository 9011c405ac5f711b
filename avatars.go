package main

import (
	"slices"

	yaml "gopkg.in/yaml.v3"
)

// avatarMap maps speaker names to avatar URLs. Iteration follows the order
// speakers were first seen; Set on a known speaker only replaces the URL.
type avatarMap struct {
	speakers []string
	urls     map[string]string
}

func newAvatarMap() *avatarMap {
	return &avatarMap{urls: map[string]string{}}
}

func (a *avatarMap) Set(speaker, url string) {
	if _, ok := a.urls[speaker]; !ok {
		a.speakers = append(a.speakers, speaker)
	}
	a.urls[speaker] = url
}

func (a *avatarMap) Get(speaker string) (string, bool) {
	url, ok := a.urls[speaker]
	return url, ok
}

func (a *avatarMap) Len() int { return len(a.speakers) }

// Speakers returns a copy of the speaker names in first-seen order.
func (a *avatarMap) Speakers() []string { return slices.Clone(a.speakers) }

// MarshalYAML emits a mapping that keeps first-seen order, so the output of
// the avatars command can be edited and fed back as an override file.
func (a *avatarMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range a.speakers {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.urls[s]},
		)
	}
	return node, nil
}

// extractAvatars records, per speaker, the avatar URL of the last message
// that has both a speaker name and an avatar image.
func extractAvatars(doc *chatDocument) *avatarMap {
	avatars := newAvatarMap()
	for _, m := range doc.messages {
		if m.Speaker == "" || m.AvatarURL == "" {
			continue
		}
		avatars.Set(m.Speaker, m.AvatarURL)
	}
	return avatars
}
