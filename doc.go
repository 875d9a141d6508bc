package movebind

// Package movebind provides:
//
// - A parser and normalizer for Move type strings (ParseTypeName/CompressType/ComposeType)
// - Reified struct types (Reified) that decode and encode values in the binary (BCS),
//   query API (fields with types) and tagged JSON forms
// - A Loader that resolves arbitrary type strings, including nested generics, against
//   a registry of struct bindings
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep the engine in the root package; bindings live under gen/, binary layouts under bcs/.
// - Struct bindings are table driven (StructDef), so generated code and YAML manifests
//   (manifest/) share one implementation.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  l := gen.NewLoader()
//  r, err := l.ReifiedStruct("0x2::coin::Coin<0x2::sui::SUI>")
//  v, err := r.FromBCS(data)
//  doc, err := v.(movebind.Instance).ToJSON()
//
//  coin, err := movebind.FromBCS[*sui.Coin](sui.CoinDef, data, sui.SUIType())
//
