// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ItemPathPrefix is the navigable prefix of an item editor path.
const ItemPathPrefix = "/newitem"

// ErrInvalidEncodedID is returned when an encoded identifier cannot be decoded.
var ErrInvalidEncodedID = errors.New("invalid encoded identifier")

// EncodeID hides a numeric identifier behind standard base64 of its decimal
// text. This is not a security boundary; it only keeps raw ids out of paths.
func EncodeID(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeID reverses EncodeID.
func DecodeID(encoded string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEncodedID, err)
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEncodedID, err)
	}
	return id, nil
}

// ItemPath builds the navigable path of an existing item:
// /newitem/{encodedHeaderID}/{encodedItemID}.
func ItemPath(headerID, itemID int64) string {
	return ItemPathPrefix + "/" + EncodeID(headerID) + "/" + EncodeID(itemID)
}

// ParseItemPath decodes a path produced by ItemPath. The bare prefix, which
// stands for a brand-new item, yields zero ids and no error.
func ParseItemPath(path string) (headerID, itemID int64, err error) {
	rest, ok := strings.CutPrefix(path, ItemPathPrefix)
	if !ok {
		return 0, 0, fmt.Errorf("%w: unexpected path %q", ErrInvalidEncodedID, path)
	}

	rest = strings.Trim(rest, "/")
	if rest == "" {
		return 0, 0, nil
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: unexpected path %q", ErrInvalidEncodedID, path)
	}

	if headerID, err = DecodeID(parts[0]); err != nil {
		return 0, 0, err
	}
	if itemID, err = DecodeID(parts[1]); err != nil {
		return 0, 0, err
	}
	return headerID, itemID, nil
}
