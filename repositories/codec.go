package repositories

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
)

// Values are stored as JSON documents under prefixed keys such as
// "progress:{campaign_id}:{character_id}".

func putJSON(txn *badger.Txn, key string, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), bytes)
}

func getJSON[T any](txn *badger.Txn, key string) (T, error) {
	var v T
	item, err := txn.Get([]byte(key))
	if err != nil {
		return v, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &v)
	})
	return v, err
}

// scanJSON decodes every value under prefix in key order.
func scanJSON[T any](txn *badger.Txn, prefix string) ([]T, error) {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	it := txn.NewIterator(options)
	defer it.Close()

	res := make([]T, 0)
	for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
		var v T
		err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &v)
		})
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func deletePrefix(txn *badger.Txn, prefix string) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	options.PrefetchValues = false
	it := txn.NewIterator(options)

	var keys [][]byte
	for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
