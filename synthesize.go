package imgpoison

import "image"

// Synthesize embeds mark into random and concatenates the result with the
// untouched reference image. The returned point is the watermark anchor in
// the coordinates of the watermarked random image; it is nil unless patch
// mode with ReportLocation was requested.
func Synthesize(random, reference, mark image.Image, option *EmbedOption) (*image.RGBA, *image.Point, error) {
	if option == nil {
		option = NewEmbedOption()
	}
	if err := option.checkMode(); err != nil {
		return nil, nil, err
	}
	if reference == nil {
		return nil, nil, errNilReference
	}
	watermarked, loc, err := Embed(random, mark, option)
	if err != nil {
		return nil, nil, err
	}
	return concatenate(watermarked, reference, option.source(), option.filter()), loc, nil
}
